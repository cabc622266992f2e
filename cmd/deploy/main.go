package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loldruger/epistulus-deploy/internal/adapter"
	"github.com/loldruger/epistulus-deploy/internal/config"
	"github.com/loldruger/epistulus-deploy/internal/crypto"
	"github.com/loldruger/epistulus-deploy/internal/deploy"
	"github.com/loldruger/epistulus-deploy/internal/dockercli"
	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/gcloud"
	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/internal/service"
	"github.com/loldruger/epistulus-deploy/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("deploy")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	configPath := cfg.JSONFilePath
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	prompter := tui.NewPrompter()
	keychain := crypto.NewKeyChain()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	token, err := deploy.ResolveGitHubToken(ctx, cfg, prompter, keychain, configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving github token")
	}

	github := adapter.NewGitHubAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.GitHub.APIBaseURL,
		Token:   token,
		Timeout: time.Duration(cfg.GitHub.Timeout),
	}, log)
	publisher := service.NewSecretPublisher(github, log)

	runner := execx.NewRunner("", log)
	pipeline := deploy.NewPipeline(deploy.Deps{
		Gcloud:    gcloud.NewProvisioner(runner, log),
		Docker:    dockercli.NewDocker(runner, log),
		Runner:    runner,
		Prompter:  prompter,
		Publisher: publisher,
		Config:    cfg,
		Log:       log,
	})

	if err := pipeline.Run(ctx); err != nil {
		if errors.Is(err, deploy.ErrSecretsIncomplete) {
			log.Error().Err(err).Msg("deploy finished with missing secrets")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("deploy failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
