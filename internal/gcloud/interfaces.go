// SPDX-License-Identifier: Apache-2.0

// Package gcloud provisions Google Cloud resources for keyless CI deploys
// by driving the gcloud CLI. Every mutation is idempotent: resources are
// described first and only created when absent.
package gcloud

import (
	"context"

	"github.com/loldruger/epistulus-deploy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provisioner_mock.go -package=mock

// Provisioner exposes the subset of gcloud the deploy pipeline needs.
type Provisioner interface {
	// ActiveAccount returns the account gcloud is currently authenticated
	// as, or an empty string when nobody is logged in.
	ActiveAccount(ctx context.Context) (string, error)
	// ConfigGet reads a gcloud config property. An unset property reads
	// as an empty string, not an error.
	ConfigGet(ctx context.Context, key string) (string, error)
	ConfigSet(ctx context.Context, key, value string) error
	// ProjectNumber resolves a project ID to its numeric project number.
	ProjectNumber(ctx context.Context, projectID string) (string, error)
	// EnableServices enables the given service APIs one by one. A service
	// that fails to enable is logged and skipped; the rest still run.
	EnableServices(ctx context.Context, projectID string, services ...string) error

	EnsureArtifactRepo(ctx context.Context, spec ArtifactRepoSpec) (models.Outcome, error)
	EnsureServiceAccount(ctx context.Context, spec ServiceAccountSpec) (models.Outcome, error)
	EnsureWorkloadIdentityPool(ctx context.Context, spec PoolSpec) (models.Outcome, error)
	EnsureWorkloadIdentityProvider(ctx context.Context, spec ProviderSpec) (models.Outcome, error)

	// GrantProjectRoles binds member to each role on the project. Roles
	// already held are a no-op on the gcloud side.
	GrantProjectRoles(ctx context.Context, projectID, member string, roles []string) error
	// BindWorkloadIdentity lets tokens from the given repository
	// impersonate the service account.
	BindWorkloadIdentity(ctx context.Context, spec BindingSpec) error

	ConfigureDockerAuth(ctx context.Context, registryHost string) error
	DeployCloudRun(ctx context.Context, spec RunDeploySpec) error
	// ServiceURL returns the public URL of a deployed Cloud Run service.
	ServiceURL(ctx context.Context, projectID, region, service string) (string, error)
}

// ArtifactRepoSpec identifies a Docker-format Artifact Registry repository.
type ArtifactRepoSpec struct {
	ProjectID   string
	Location    string
	Repository  string
	Description string
}

// ServiceAccountSpec identifies an IAM service account by its short name.
type ServiceAccountSpec struct {
	ProjectID   string
	Name        string
	DisplayName string
}

// Email returns the full service-account email for the spec.
func (s ServiceAccountSpec) Email() string {
	return s.Name + "@" + s.ProjectID + ".iam.gserviceaccount.com"
}

// PoolSpec identifies a global workload identity pool.
type PoolSpec struct {
	ProjectID   string
	PoolID      string
	DisplayName string
}

// ProviderSpec identifies an OIDC provider inside a workload identity pool,
// restricted to a single source repository.
type ProviderSpec struct {
	ProjectID   string
	PoolID      string
	ProviderID  string
	DisplayName string
	IssuerURI   string
	Repository  models.Repository
}

// BindingSpec connects a repository's federated identities to a service
// account.
type BindingSpec struct {
	ProjectID           string
	ServiceAccountEmail string
	// PoolResource is the full pool resource name,
	// projects/<number>/locations/global/workloadIdentityPools/<pool>.
	PoolResource string
	Repository   models.Repository
}

// RunDeploySpec describes a Cloud Run deployment.
type RunDeploySpec struct {
	ProjectID string
	Region    string
	Service   string
	ImageURI  string
	// AllowUnauthenticated opens the service to public traffic.
	AllowUnauthenticated bool

	// Port is the container port the service listens on. Zero leaves the
	// platform default.
	Port int
	// Memory and CPU are Cloud Run resource limits ("512Mi", "1"). Empty
	// leaves the platform default.
	Memory string
	CPU    string
	// MinInstances and MaxInstances bound autoscaling; zero leaves the
	// platform default.
	MinInstances int
	MaxInstances int

	// Env is set on the service as literal environment variables. Values
	// may be credentials; they travel on the gcloud argv and must never
	// be logged (the command runner redacts them).
	Env map[string]string
}
