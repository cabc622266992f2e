// Command secrets manages GitHub Actions repository secrets directly:
//
//	secrets [-repo owner/name] publish NAME=VALUE [NAME=VALUE ...]
//	secrets [-repo owner/name] publish NAME            (value prompted)
//	secrets [-repo owner/name] list
//	secrets [-repo owner/name] delete NAME
//
// The GitHub token comes from the GITHUB_TOKEN environment variable, the
// sealed token in the config file, or an interactive prompt.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/loldruger/epistulus-deploy/internal/adapter"
	"github.com/loldruger/epistulus-deploy/internal/config"
	"github.com/loldruger/epistulus-deploy/internal/crypto"
	"github.com/loldruger/epistulus-deploy/internal/deploy"
	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/gitutil"
	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/internal/service"
	"github.com/loldruger/epistulus-deploy/internal/tui"
	"github.com/loldruger/epistulus-deploy/models"
)

func main() {
	var repoFlag string
	flag.StringVar(&repoFlag, "repo", "", "GitHub repository as owner/name (default: origin remote)")

	log := logger.NewLogger("secrets")
	cfg, err := config.Load() // parses the remaining flags
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter := tui.NewPrompter()

	repo, err := resolveRepo(ctx, repoFlag, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving repository")
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		configPath := cfg.JSONFilePath
		if configPath == "" {
			configPath = config.DefaultConfigFile
		}
		token, err = deploy.ResolveGitHubToken(ctx, cfg, prompter, crypto.NewKeyChain(), configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("error resolving github token")
		}
	}

	github := adapter.NewGitHubAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.GitHub.APIBaseURL,
		Token:   token,
		Timeout: time.Duration(cfg.GitHub.Timeout),
	}, log)

	switch flag.Arg(0) {
	case "publish":
		err = publish(ctx, github, prompter, repo, flag.Args()[1:], log)
	case "list":
		err = list(ctx, github, repo)
	case "delete":
		err = remove(ctx, github, repo, flag.Args()[1:])
	default:
		fmt.Fprintln(os.Stderr, "usage: secrets [-repo owner/name] publish|list|delete ...")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func resolveRepo(ctx context.Context, repoFlag string, log *logger.Logger) (models.Repository, error) {
	if repoFlag != "" {
		return gitutil.ParseRemoteURL("https://github.com/" + repoFlag)
	}
	return gitutil.DetectRepository(ctx, execx.NewRunner("", log))
}

func publish(ctx context.Context, github adapter.GitHubAdapter, prompter tui.Prompter, repo models.Repository, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("publish needs at least one NAME=VALUE or NAME argument")
	}

	secrets := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			var err error
			value, err = prompter.ReadSecret("Value for " + name)
			if err != nil {
				return err
			}
		}
		secrets[name] = value
	}

	publisher := service.NewSecretPublisher(github, log)
	report, err := publisher.PublishAll(ctx, repo, secrets)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.OK {
			fmt.Printf("%s: stored\n", res.Name)
			continue
		}
		fmt.Printf("%s: FAILED (%s)\n", res.Name, res.Reason)
	}
	fmt.Printf("%d/%d stored\n", report.Succeeded(), report.Total())

	if !report.AllSucceeded() {
		os.Exit(1)
	}
	return nil
}

func list(ctx context.Context, github adapter.GitHubAdapter, repo models.Repository) error {
	items, err := github.ListSecrets(ctx, repo)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%s\t(updated %s)\n", item.Name, item.UpdatedAt)
	}
	return nil
}

func remove(ctx context.Context, github adapter.GitHubAdapter, repo models.Repository, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete needs exactly one secret name")
	}
	if err := github.DeleteSecret(ctx, repo, args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: deleted\n", args[0])
	return nil
}
