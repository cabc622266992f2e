// SPDX-License-Identifier: Apache-2.0

// Package deploy orchestrates the full path from a local checkout to a
// running Cloud Run service with keyless GitHub Actions deploys: cloud
// resources are provisioned idempotently, the image is built and pushed,
// and the workflow's secrets are published to the repository.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/config"
	"github.com/loldruger/epistulus-deploy/internal/dockercli"
	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/gcloud"
	"github.com/loldruger/epistulus-deploy/internal/gitutil"
	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/internal/service"
	"github.com/loldruger/epistulus-deploy/internal/tui"
	"github.com/loldruger/epistulus-deploy/models"
)

const (
	serviceAccountName = "github-actions-sa"
	poolID             = "github-actions-pool"
	providerID         = "github-actions-provider"
	githubIssuerURI    = "https://token.actions.githubusercontent.com"

	// servicePort is the container port the bot listens on.
	servicePort = 8080

	discordTokenEnvVar = "DISCORD_BOT_TOKEN"
)

// requiredAPIs are the service APIs a keyless Cloud Run deploy depends on.
var requiredAPIs = []string{
	"run.googleapis.com",
	"artifactregistry.googleapis.com",
	"cloudbuild.googleapis.com",
	"iam.googleapis.com",
	"iamcredentials.googleapis.com",
	"sts.googleapis.com",
}

// serviceAccountRoles are granted to the deploy service account on the
// project.
var serviceAccountRoles = []string{
	"roles/run.admin",
	"roles/artifactregistry.admin",
	"roles/storage.admin",
	"roles/iam.serviceAccountUser",
}

// ErrSecretsIncomplete is returned when the deploy finished but one or more
// repository secrets could not be stored.
var ErrSecretsIncomplete = errors.New("some repository secrets were not stored")

// Deps carries everything the pipeline drives. All fields except Out and
// Log are required.
type Deps struct {
	Gcloud    gcloud.Provisioner
	Docker    dockercli.Docker
	Runner    execx.CommandRunner
	Prompter  tui.Prompter
	Publisher service.SecretPublisher
	Config    *config.BuildConfig
	Log       *logger.Logger
	// Out receives operator-facing progress lines. Defaults to stdout.
	Out io.Writer
}

// Pipeline runs a deploy end to end. It is single-use: construct, Run,
// discard.
type Pipeline struct {
	deps Deps
	log  *logger.Logger
	out  io.Writer

	repo         models.Repository
	outputs      models.DeployOutputs
	report       service.PublishReport
	discordToken string
}

// NewPipeline constructs a deploy pipeline.
func NewPipeline(deps Deps) *Pipeline {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	return &Pipeline{deps: deps, log: deps.Log, out: deps.Out}
}

// Run executes the whole deploy. Every step logs what it did; the operator
// sees one progress line per step on Out.
func (p *Pipeline) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"checking prerequisites", p.checkPrerequisites},
		{"detecting repository", p.resolveRepository},
		{"resolving project", p.resolveProject},
		{"collecting tokens", p.collectTokens},
		{"enabling service APIs", p.enableAPIs},
		{"provisioning cloud resources", p.provision},
		{"building and pushing image", p.buildAndPush},
		{"deploying service", p.deployService},
		{"publishing repository secrets", p.publishSecrets},
	}

	for _, step := range steps {
		fmt.Fprintf(p.out, "==> %s\n", step.name)
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	p.printSummary()

	if !p.report.AllSucceeded() {
		return fmt.Errorf("%w (%d/%d stored)",
			ErrSecretsIncomplete, p.report.Succeeded(), p.report.Total())
	}
	return nil
}

func (p *Pipeline) checkPrerequisites(ctx context.Context) error {
	for _, bin := range []string{"gcloud", "git"} {
		if _, err := p.deps.Runner.LookPath(bin); err != nil {
			return fmt.Errorf("%s is not installed: %w", bin, err)
		}
	}
	if err := p.deps.Docker.Ping(ctx); err != nil {
		return err
	}
	version, err := p.deps.Docker.Version(ctx)
	if err != nil {
		return err
	}
	p.log.Info().Str("docker", version).Msg("docker available")

	contextDir := p.deps.Config.Service.ContextDir
	if contextDir == "" {
		contextDir = "."
	}
	if _, err := os.Stat(filepath.Join(contextDir, "Dockerfile")); err != nil {
		return fmt.Errorf("no Dockerfile in %s: %w", contextDir, err)
	}

	account, err := p.deps.Gcloud.ActiveAccount(ctx)
	if err != nil {
		return err
	}
	if account == "" {
		return errors.New("gcloud has no active account; run `gcloud auth login` first")
	}
	p.log.Info().Str("account", account).Msg("gcloud authenticated")
	return nil
}

func (p *Pipeline) resolveRepository(ctx context.Context) error {
	repo, err := gitutil.DetectRepository(ctx, p.deps.Runner)
	if err != nil {
		if !errors.Is(err, gitutil.ErrNoOrigin) {
			return err
		}
		// No origin: fall back to asking.
		full, promptErr := p.deps.Prompter.ReadLine("GitHub repository (owner/name)", "")
		if promptErr != nil {
			return promptErr
		}
		repo, err = gitutil.ParseRemoteURL("https://github.com/" + full)
		if err != nil {
			return err
		}
	}

	ok, err := p.deps.Prompter.Confirm(fmt.Sprintf("Deploy for repository %s?", repo.FullName()))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("repository not confirmed")
	}

	p.repo = repo
	p.log.Info().Str("repository", repo.FullName()).Msg("repository resolved")
	return nil
}

func (p *Pipeline) resolveProject(ctx context.Context) error {
	cfg := p.deps.Config

	projectID := cfg.GCP.ProjectID
	if projectID == "" {
		current, err := p.deps.Gcloud.ConfigGet(ctx, "project")
		if err != nil {
			return err
		}
		projectID, err = p.deps.Prompter.ReadLine("GCP project ID", current)
		if err != nil {
			return err
		}
	}
	if projectID == "" {
		return errors.New("no project ID")
	}

	if err := p.deps.Gcloud.ConfigSet(ctx, "project", projectID); err != nil {
		return err
	}
	if err := p.deps.Gcloud.ConfigSet(ctx, "run/region", cfg.GCP.Region); err != nil {
		return err
	}
	if err := p.deps.Gcloud.ConfigSet(ctx, "artifacts/location", cfg.Registry.Location); err != nil {
		return err
	}

	number, err := p.deps.Gcloud.ProjectNumber(ctx, projectID)
	if err != nil {
		return err
	}

	p.outputs = models.DeployOutputs{
		ProjectID:          projectID,
		ProjectNumber:      number,
		Region:             cfg.GCP.Region,
		RegistryLocation:   cfg.Registry.Location,
		RegistryRepository: cfg.Registry.Repository,
		ServiceName:        cfg.Service.Name,
	}
	p.outputs.ImageURI = p.outputs.ImageRef(cfg.Service.ImageName, cfg.Service.ImageTag)
	return nil
}

// collectTokens asks for the runtime credentials before any cloud resources
// are touched, so the service comes up with its token already set.
func (p *Pipeline) collectTokens(context.Context) error {
	token, err := p.deps.Prompter.ReadSecret("Discord bot token (enter to skip)")
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Fprintf(p.out, "    no Discord bot token; the service will not start until %s is set\n",
			discordTokenEnvVar)
	}
	p.discordToken = token
	return nil
}

func (p *Pipeline) enableAPIs(ctx context.Context) error {
	return p.deps.Gcloud.EnableServices(ctx, p.outputs.ProjectID, requiredAPIs...)
}

func (p *Pipeline) provision(ctx context.Context) error {
	g := p.deps.Gcloud
	out := &p.outputs

	outcome, err := g.EnsureArtifactRepo(ctx, gcloud.ArtifactRepoSpec{
		ProjectID:   out.ProjectID,
		Location:    out.RegistryLocation,
		Repository:  out.RegistryRepository,
		Description: "Container images for " + p.repo.FullName(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "    artifact repository %s: %s\n", out.RegistryRepository, outcome)

	saSpec := gcloud.ServiceAccountSpec{
		ProjectID:   out.ProjectID,
		Name:        serviceAccountName,
		DisplayName: "GitHub Actions deployer",
	}
	outcome, err = g.EnsureServiceAccount(ctx, saSpec)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "    service account %s: %s\n", saSpec.Email(), outcome)

	if err := g.GrantProjectRoles(ctx, out.ProjectID,
		"serviceAccount:"+saSpec.Email(), serviceAccountRoles); err != nil {
		return err
	}

	outcome, err = g.EnsureWorkloadIdentityPool(ctx, gcloud.PoolSpec{
		ProjectID:   out.ProjectID,
		PoolID:      poolID,
		DisplayName: "GitHub Actions",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "    workload identity pool %s: %s\n", poolID, outcome)

	outcome, err = g.EnsureWorkloadIdentityProvider(ctx, gcloud.ProviderSpec{
		ProjectID:   out.ProjectID,
		PoolID:      poolID,
		ProviderID:  providerID,
		DisplayName: "GitHub Actions",
		IssuerURI:   githubIssuerURI,
		Repository:  p.repo,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "    workload identity provider %s: %s\n", providerID, outcome)

	poolResource := fmt.Sprintf("projects/%s/locations/global/workloadIdentityPools/%s",
		out.ProjectNumber, poolID)
	if err := g.BindWorkloadIdentity(ctx, gcloud.BindingSpec{
		ProjectID:           out.ProjectID,
		ServiceAccountEmail: saSpec.Email(),
		PoolResource:        poolResource,
		Repository:          p.repo,
	}); err != nil {
		return err
	}

	out.WIFProvider = poolResource + "/providers/" + providerID
	out.WIFServiceAccount = saSpec.Email()
	return nil
}

func (p *Pipeline) buildAndPush(ctx context.Context) error {
	if err := p.deps.Gcloud.ConfigureDockerAuth(ctx, p.outputs.RegistryHost()); err != nil {
		return err
	}
	contextDir := p.deps.Config.Service.ContextDir
	if contextDir == "" {
		contextDir = "."
	}
	if err := p.deps.Docker.Build(ctx, contextDir, p.outputs.ImageURI, dockercli.DefaultPlatform); err != nil {
		return err
	}
	return p.deps.Docker.Push(ctx, p.outputs.ImageURI)
}

func (p *Pipeline) deployService(ctx context.Context) error {
	svc := p.deps.Config.Service
	spec := gcloud.RunDeploySpec{
		ProjectID:            p.outputs.ProjectID,
		Region:               p.outputs.Region,
		Service:              p.outputs.ServiceName,
		ImageURI:             p.outputs.ImageURI,
		AllowUnauthenticated: true,
		Port:                 servicePort,
		Memory:               svc.Memory,
		CPU:                  svc.CPU,
		MinInstances:         svc.MinInstances,
		MaxInstances:         svc.MaxInstances,
	}
	if p.discordToken != "" {
		spec.Env = map[string]string{discordTokenEnvVar: p.discordToken}
	}
	if err := p.deps.Gcloud.DeployCloudRun(ctx, spec); err != nil {
		return err
	}

	url, err := p.deps.Gcloud.ServiceURL(ctx,
		p.outputs.ProjectID, p.outputs.Region, p.outputs.ServiceName)
	if err != nil {
		return err
	}
	p.outputs.ServiceURL = url
	return nil
}

func (p *Pipeline) publishSecrets(ctx context.Context) error {
	report, err := p.deps.Publisher.PublishAll(ctx, p.repo,
		p.outputs.ActionsSecrets(p.discordToken))
	if err != nil {
		return err
	}
	p.report = report

	for _, res := range report.Results {
		mark := "ok"
		if !res.OK {
			mark = "FAILED (" + res.Reason + ")"
		}
		fmt.Fprintf(p.out, "    secret %s: %s\n", res.Name, mark)
	}
	return nil
}

func (p *Pipeline) printSummary() {
	fmt.Fprintf(p.out, "\nDeploy complete\n")
	fmt.Fprintf(p.out, "  repository:       %s\n", p.repo.FullName())
	fmt.Fprintf(p.out, "  project:          %s (%s)\n", p.outputs.ProjectID, p.outputs.ProjectNumber)
	fmt.Fprintf(p.out, "  image:            %s\n", p.outputs.ImageURI)
	fmt.Fprintf(p.out, "  service URL:      %s\n", p.outputs.ServiceURL)
	fmt.Fprintf(p.out, "  secrets stored:   %d/%d\n", p.report.Succeeded(), p.report.Total())

	if p.outputs.ServiceURL == "" {
		return
	}
	ok, err := p.deps.Prompter.Confirm("Copy service URL to clipboard?")
	if err != nil || !ok {
		return
	}
	if err := tui.CopyToClipboard(p.outputs.ServiceURL); err != nil {
		p.log.Warn().Err(err).Msg("clipboard copy failed")
		fmt.Fprintf(p.out, "  (clipboard unavailable: %s)\n", strings.TrimSpace(err.Error()))
	}
}
