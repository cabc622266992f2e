// SPDX-License-Identifier: Apache-2.0

package gcloud

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/logger"
	"github.com/loldruger/epistulus-deploy/models"
)

const binary = "gcloud"

// WorkloadIdentityUserRole is the role a federated identity needs to
// impersonate a service account.
const WorkloadIdentityUserRole = "roles/iam.workloadIdentityUser"

type provisioner struct {
	runner execx.CommandRunner
	log    *logger.Logger
}

// NewProvisioner constructs a [Provisioner] over the given command runner.
func NewProvisioner(runner execx.CommandRunner, log *logger.Logger) Provisioner {
	if log == nil {
		log = logger.Nop()
	}
	return &provisioner{runner: runner, log: log}
}

// run executes gcloud and turns a non-zero exit into an error carrying the
// command's stderr.
func (p *provisioner) run(ctx context.Context, args ...string) (execx.Result, error) {
	res, err := p.runner.Run(ctx, binary, args...)
	if err != nil {
		return res, fmt.Errorf("gcloud %s: %w", args[0], err)
	}
	if !res.Ok() {
		return res, fmt.Errorf("gcloud %s exited %d: %s",
			args[0], res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}

// exists probes a resource with a describe command. Any non-zero exit is
// treated as "absent": describe does not distinguish missing from broken,
// and the create that follows will surface real problems.
func (p *provisioner) exists(ctx context.Context, args ...string) (bool, error) {
	res, err := p.runner.Run(ctx, binary, args...)
	if err != nil {
		return false, fmt.Errorf("gcloud %s: %w", args[0], err)
	}
	return res.Ok(), nil
}

func (p *provisioner) ActiveAccount(ctx context.Context) (string, error) {
	res, err := p.run(ctx, "auth", "list",
		"--filter=status:ACTIVE", "--format=value(account)")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (p *provisioner) ConfigGet(ctx context.Context, key string) (string, error) {
	res, err := p.run(ctx, "config", "get-value", key, "--quiet")
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(res.Stdout)
	if value == "(unset)" {
		return "", nil
	}
	return value, nil
}

func (p *provisioner) ConfigSet(ctx context.Context, key, value string) error {
	_, err := p.run(ctx, "config", "set", key, value, "--quiet")
	return err
}

func (p *provisioner) ProjectNumber(ctx context.Context, projectID string) (string, error) {
	res, err := p.run(ctx, "projects", "describe", projectID,
		"--format=value(projectNumber)")
	if err != nil {
		return "", err
	}
	number := strings.TrimSpace(res.Stdout)
	if number == "" {
		return "", fmt.Errorf("project %s has no project number", projectID)
	}
	return number, nil
}

func (p *provisioner) EnableServices(ctx context.Context, projectID string, services ...string) error {
	for _, svc := range services {
		if _, err := p.run(ctx, "services", "enable", svc,
			"--project", projectID, "--quiet"); err != nil {
			// Enabling is usually a permissions hiccup on an already
			// enabled API. The deploy can still succeed, so keep going.
			p.log.Warn().Err(err).Str("service", svc).Msg("could not enable service API")
			continue
		}
		p.log.Info().Str("service", svc).Msg("service API enabled")
	}
	return nil
}

func (p *provisioner) EnsureArtifactRepo(ctx context.Context, spec ArtifactRepoSpec) (models.Outcome, error) {
	present, err := p.exists(ctx, "artifacts", "repositories", "describe", spec.Repository,
		"--location", spec.Location, "--project", spec.ProjectID)
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	if present {
		p.log.Info().Str("repository", spec.Repository).Msg("artifact repository already present")
		return models.OutcomeAlreadyPresent, nil
	}

	_, err = p.run(ctx, "artifacts", "repositories", "create", spec.Repository,
		"--repository-format=docker",
		"--location", spec.Location,
		"--description", spec.Description,
		"--project", spec.ProjectID, "--quiet")
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	p.log.Info().Str("repository", spec.Repository).Str("location", spec.Location).
		Msg("artifact repository created")
	return models.OutcomeCreated, nil
}

func (p *provisioner) EnsureServiceAccount(ctx context.Context, spec ServiceAccountSpec) (models.Outcome, error) {
	present, err := p.exists(ctx, "iam", "service-accounts", "describe", spec.Email(),
		"--project", spec.ProjectID)
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	if present {
		p.log.Info().Str("service_account", spec.Email()).Msg("service account already present")
		return models.OutcomeAlreadyPresent, nil
	}

	_, err = p.run(ctx, "iam", "service-accounts", "create", spec.Name,
		"--display-name", spec.DisplayName,
		"--project", spec.ProjectID, "--quiet")
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	p.log.Info().Str("service_account", spec.Email()).Msg("service account created")
	return models.OutcomeCreated, nil
}

func (p *provisioner) EnsureWorkloadIdentityPool(ctx context.Context, spec PoolSpec) (models.Outcome, error) {
	present, err := p.exists(ctx, "iam", "workload-identity-pools", "describe", spec.PoolID,
		"--location=global", "--project", spec.ProjectID)
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	if present {
		p.log.Info().Str("pool", spec.PoolID).Msg("workload identity pool already present")
		return models.OutcomeAlreadyPresent, nil
	}

	_, err = p.run(ctx, "iam", "workload-identity-pools", "create", spec.PoolID,
		"--location=global",
		"--display-name", spec.DisplayName,
		"--project", spec.ProjectID, "--quiet")
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	p.log.Info().Str("pool", spec.PoolID).Msg("workload identity pool created")
	return models.OutcomeCreated, nil
}

func (p *provisioner) EnsureWorkloadIdentityProvider(ctx context.Context, spec ProviderSpec) (models.Outcome, error) {
	present, err := p.exists(ctx, "iam", "workload-identity-pools", "providers", "describe", spec.ProviderID,
		"--workload-identity-pool", spec.PoolID,
		"--location=global", "--project", spec.ProjectID)
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	if present {
		p.log.Info().Str("provider", spec.ProviderID).Msg("workload identity provider already present")
		return models.OutcomeAlreadyPresent, nil
	}

	// The attribute condition pins the provider to one repository so no
	// other repo on the issuer can mint credentials for this project.
	condition := fmt.Sprintf("assertion.repository == '%s'", spec.Repository.FullName())
	_, err = p.run(ctx, "iam", "workload-identity-pools", "providers", "create-oidc", spec.ProviderID,
		"--workload-identity-pool", spec.PoolID,
		"--location=global",
		"--display-name", spec.DisplayName,
		"--issuer-uri", spec.IssuerURI,
		"--attribute-mapping", "google.subject=assertion.sub,attribute.repository=assertion.repository",
		"--attribute-condition", condition,
		"--project", spec.ProjectID, "--quiet")
	if err != nil {
		return models.OutcomeAlreadyPresent, err
	}
	p.log.Info().Str("provider", spec.ProviderID).Msg("workload identity provider created")
	return models.OutcomeCreated, nil
}

func (p *provisioner) GrantProjectRoles(ctx context.Context, projectID, member string, roles []string) error {
	for _, role := range roles {
		if _, err := p.run(ctx, "projects", "add-iam-policy-binding", projectID,
			"--member", member,
			"--role", role,
			"--condition=None", "--quiet"); err != nil {
			return fmt.Errorf("grant %s: %w", role, err)
		}
		p.log.Info().Str("role", role).Str("member", member).Msg("project role granted")
	}
	return nil
}

func (p *provisioner) BindWorkloadIdentity(ctx context.Context, spec BindingSpec) error {
	member := fmt.Sprintf("principalSet://iam.googleapis.com/%s/attribute.repository/%s",
		spec.PoolResource, spec.Repository.FullName())
	_, err := p.run(ctx, "iam", "service-accounts", "add-iam-policy-binding", spec.ServiceAccountEmail,
		"--role", WorkloadIdentityUserRole,
		"--member", member,
		"--project", spec.ProjectID, "--quiet")
	if err != nil {
		return err
	}
	p.log.Info().Str("service_account", spec.ServiceAccountEmail).
		Str("repository", spec.Repository.FullName()).
		Msg("workload identity binding added")
	return nil
}

func (p *provisioner) ConfigureDockerAuth(ctx context.Context, registryHost string) error {
	_, err := p.run(ctx, "auth", "configure-docker", registryHost, "--quiet")
	return err
}

func (p *provisioner) DeployCloudRun(ctx context.Context, spec RunDeploySpec) error {
	args := []string{"run", "deploy", spec.Service,
		"--image", spec.ImageURI,
		"--region", spec.Region,
		"--platform", "managed",
		"--project", spec.ProjectID, "--quiet"}
	if spec.AllowUnauthenticated {
		args = append(args, "--allow-unauthenticated")
	}
	if spec.Port > 0 {
		args = append(args, "--port", strconv.Itoa(spec.Port))
	}
	if spec.Memory != "" {
		args = append(args, "--memory", spec.Memory)
	}
	if spec.CPU != "" {
		args = append(args, "--cpu", spec.CPU)
	}
	if spec.MinInstances > 0 {
		args = append(args, "--min-instances", strconv.Itoa(spec.MinInstances))
	}
	if spec.MaxInstances > 0 {
		args = append(args, "--max-instances", strconv.Itoa(spec.MaxInstances))
	}
	if len(spec.Env) > 0 {
		pairs := make([]string, 0, len(spec.Env))
		for _, name := range sortedKeys(spec.Env) {
			pairs = append(pairs, name+"="+spec.Env[name])
		}
		args = append(args, "--set-env-vars", strings.Join(pairs, ","))
	}
	if _, err := p.run(ctx, args...); err != nil {
		return err
	}
	p.log.Info().Str("service", spec.Service).Str("image", spec.ImageURI).
		Msg("cloud run service deployed")
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *provisioner) ServiceURL(ctx context.Context, projectID, region, service string) (string, error) {
	res, err := p.run(ctx, "run", "services", "describe", service,
		"--region", region,
		"--project", projectID,
		"--format=value(status.url)")
	if err != nil {
		return "", err
	}
	url := strings.TrimSpace(res.Stdout)
	if url == "" {
		return "", fmt.Errorf("service %s has no URL yet", service)
	}
	return url, nil
}
