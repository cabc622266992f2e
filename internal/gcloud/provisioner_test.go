// SPDX-License-Identifier: Apache-2.0

package gcloud_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/gcloud"
	"github.com/loldruger/epistulus-deploy/internal/mock"
	"github.com/loldruger/epistulus-deploy/models"
)

func okResult(stdout string) execx.Result {
	return execx.Result{Stdout: stdout, ExitCode: 0}
}

func failResult(stderr string) execx.Result {
	return execx.Result{Stderr: stderr, ExitCode: 1}
}

func TestActiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "auth", "list",
			"--filter=status:ACTIVE", "--format=value(account)").
		Return(okResult("dev@example.com\n"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	account, err := p.ActiveAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", account)
}

func TestConfigGet_UnsetReadsAsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "config", "get-value", "project", "--quiet").
		Return(okResult("(unset)\n"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	value, err := p.ConfigGet(context.Background(), "project")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestProjectNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "projects", "describe", "epistulus-prod",
			"--format=value(projectNumber)").
		Return(okResult("123456789\n"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	number, err := p.ProjectNumber(context.Background(), "epistulus-prod")
	require.NoError(t, err)
	assert.Equal(t, "123456789", number)
}

func TestEnableServices_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "services", "enable", "run.googleapis.com",
			"--project", "epistulus-prod", "--quiet").
		Return(failResult("PERMISSION_DENIED"), nil)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "services", "enable", "iam.googleapis.com",
			"--project", "epistulus-prod", "--quiet").
		Return(okResult(""), nil)

	p := gcloud.NewProvisioner(runner, nil)
	err := p.EnableServices(context.Background(), "epistulus-prod",
		"run.googleapis.com", "iam.googleapis.com")
	assert.NoError(t, err, "a failed enable must not stop the rest")
}

func TestEnsureArtifactRepo_AlreadyPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "artifacts", "repositories", "describe", "discord-epistulus-repo",
			"--location", "asia-northeast3", "--project", "epistulus-prod").
		Return(okResult("name: ..."), nil)
	// No create call expected.

	p := gcloud.NewProvisioner(runner, nil)
	outcome, err := p.EnsureArtifactRepo(context.Background(), gcloud.ArtifactRepoSpec{
		ProjectID:  "epistulus-prod",
		Location:   "asia-northeast3",
		Repository: "discord-epistulus-repo",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAlreadyPresent, outcome)
}

func TestEnsureArtifactRepo_CreatesWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "artifacts", "repositories", "describe", "discord-epistulus-repo",
			"--location", "asia-northeast3", "--project", "epistulus-prod").
		Return(failResult("NOT_FOUND"), nil)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "artifacts", "repositories", "create", "discord-epistulus-repo",
			"--repository-format=docker",
			"--location", "asia-northeast3",
			"--description", "Container images",
			"--project", "epistulus-prod", "--quiet").
		Return(okResult(""), nil)

	p := gcloud.NewProvisioner(runner, nil)
	outcome, err := p.EnsureArtifactRepo(context.Background(), gcloud.ArtifactRepoSpec{
		ProjectID:   "epistulus-prod",
		Location:    "asia-northeast3",
		Repository:  "discord-epistulus-repo",
		Description: "Container images",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, outcome)
}

func TestEnsureServiceAccount_DescribesByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "iam", "service-accounts", "describe",
			"github-actions-sa@epistulus-prod.iam.gserviceaccount.com",
			"--project", "epistulus-prod").
		Return(okResult("email: ..."), nil)

	p := gcloud.NewProvisioner(runner, nil)
	outcome, err := p.EnsureServiceAccount(context.Background(), gcloud.ServiceAccountSpec{
		ProjectID: "epistulus-prod",
		Name:      "github-actions-sa",
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAlreadyPresent, outcome)
}

func TestEnsureWorkloadIdentityProvider_PinsRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "iam", "workload-identity-pools", "providers", "describe",
			"github-actions-provider",
			"--workload-identity-pool", "github-actions-pool",
			"--location=global", "--project", "epistulus-prod").
		Return(failResult("NOT_FOUND"), nil)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "iam", "workload-identity-pools", "providers", "create-oidc",
			"github-actions-provider",
			"--workload-identity-pool", "github-actions-pool",
			"--location=global",
			"--display-name", "GitHub Actions",
			"--issuer-uri", "https://token.actions.githubusercontent.com",
			"--attribute-mapping", "google.subject=assertion.sub,attribute.repository=assertion.repository",
			"--attribute-condition", "assertion.repository == 'loldruger/discord-epistulus'",
			"--project", "epistulus-prod", "--quiet").
		Return(okResult(""), nil)

	p := gcloud.NewProvisioner(runner, nil)
	outcome, err := p.EnsureWorkloadIdentityProvider(context.Background(), gcloud.ProviderSpec{
		ProjectID:   "epistulus-prod",
		PoolID:      "github-actions-pool",
		ProviderID:  "github-actions-provider",
		DisplayName: "GitHub Actions",
		IssuerURI:   "https://token.actions.githubusercontent.com",
		Repository:  models.Repository{Owner: "loldruger", Name: "discord-epistulus"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, outcome)
}

func TestBindWorkloadIdentity_BuildsPrincipalSetMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "iam", "service-accounts", "add-iam-policy-binding",
			"github-actions-sa@epistulus-prod.iam.gserviceaccount.com",
			"--role", "roles/iam.workloadIdentityUser",
			"--member", "principalSet://iam.googleapis.com/projects/123456789/locations/global/workloadIdentityPools/github-actions-pool/attribute.repository/loldruger/discord-epistulus",
			"--project", "epistulus-prod", "--quiet").
		Return(okResult(""), nil)

	p := gcloud.NewProvisioner(runner, nil)
	err := p.BindWorkloadIdentity(context.Background(), gcloud.BindingSpec{
		ProjectID:           "epistulus-prod",
		ServiceAccountEmail: "github-actions-sa@epistulus-prod.iam.gserviceaccount.com",
		PoolResource:        "projects/123456789/locations/global/workloadIdentityPools/github-actions-pool",
		Repository:          models.Repository{Owner: "loldruger", Name: "discord-epistulus"},
	})
	assert.NoError(t, err)
}

func TestGrantProjectRoles_StopsOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "projects", "add-iam-policy-binding", "epistulus-prod",
			"--member", "serviceAccount:sa@epistulus-prod.iam.gserviceaccount.com",
			"--role", "roles/run.admin",
			"--condition=None", "--quiet").
		Return(failResult("PERMISSION_DENIED"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	err := p.GrantProjectRoles(context.Background(), "epistulus-prod",
		"serviceAccount:sa@epistulus-prod.iam.gserviceaccount.com",
		[]string{"roles/run.admin", "roles/storage.admin"})
	require.Error(t, err, "a role grant failure is fatal: the workflow would be broken")
	assert.Contains(t, err.Error(), "roles/run.admin")
}

func TestDeployCloudRun_SurfacesStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "run", "deploy", "discord-epistulus-service",
			"--image", "asia-northeast3-docker.pkg.dev/epistulus-prod/discord-epistulus-repo/discord-epistulus:latest",
			"--region", "asia-northeast3",
			"--platform", "managed",
			"--project", "epistulus-prod", "--quiet",
			"--allow-unauthenticated").
		Return(failResult("image not found"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	err := p.DeployCloudRun(context.Background(), gcloud.RunDeploySpec{
		ProjectID:            "epistulus-prod",
		Region:               "asia-northeast3",
		Service:              "discord-epistulus-service",
		ImageURI:             "asia-northeast3-docker.pkg.dev/epistulus-prod/discord-epistulus-repo/discord-epistulus:latest",
		AllowUnauthenticated: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image not found")
}

func TestDeployCloudRun_ResourceAndEnvFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "run", "deploy", "discord-epistulus-service",
			"--image", "asia-northeast3-docker.pkg.dev/epistulus-prod/discord-epistulus-repo/discord-epistulus:latest",
			"--region", "asia-northeast3",
			"--platform", "managed",
			"--project", "epistulus-prod", "--quiet",
			"--allow-unauthenticated",
			"--port", "8080",
			"--memory", "512Mi",
			"--cpu", "1",
			"--min-instances", "1",
			"--max-instances", "3",
			"--set-env-vars", "DISCORD_BOT_TOKEN=bot-token,LOG_LEVEL=info").
		Return(okResult(""), nil)

	p := gcloud.NewProvisioner(runner, nil)
	err := p.DeployCloudRun(context.Background(), gcloud.RunDeploySpec{
		ProjectID:            "epistulus-prod",
		Region:               "asia-northeast3",
		Service:              "discord-epistulus-service",
		ImageURI:             "asia-northeast3-docker.pkg.dev/epistulus-prod/discord-epistulus-repo/discord-epistulus:latest",
		AllowUnauthenticated: true,
		Port:                 8080,
		Memory:               "512Mi",
		CPU:                  "1",
		MinInstances:         1,
		MaxInstances:         3,
		Env: map[string]string{
			"LOG_LEVEL":         "info",
			"DISCORD_BOT_TOKEN": "bot-token",
		},
	})
	require.NoError(t, err)
}

func TestServiceURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "gcloud", "run", "services", "describe", "discord-epistulus-service",
			"--region", "asia-northeast3",
			"--project", "epistulus-prod",
			"--format=value(status.url)").
		Return(okResult("https://discord-epistulus-service-abc-an3.a.run.app\n"), nil)

	p := gcloud.NewProvisioner(runner, nil)
	url, err := p.ServiceURL(context.Background(), "epistulus-prod", "asia-northeast3", "discord-epistulus-service")
	require.NoError(t, err)
	assert.Equal(t, "https://discord-epistulus-service-abc-an3.a.run.app", url)
}
