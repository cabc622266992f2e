package models

import "fmt"

// DeployOutputs accumulates every value produced by the provisioning steps
// that later stages (image build, Cloud Run deploy, secret publication)
// consume. It is assembled once per run and passed explicitly instead of
// being re-read from ambient gcloud configuration.
type DeployOutputs struct {
	ProjectID     string
	ProjectNumber string
	Region        string

	RegistryLocation   string
	RegistryRepository string

	ServiceName string
	ImageURI    string
	ServiceURL  string

	WIFProvider       string
	WIFServiceAccount string
}

// RegistryHost returns the Artifact Registry docker host for the configured
// location, e.g. "asia-northeast3-docker.pkg.dev".
func (o DeployOutputs) RegistryHost() string {
	return o.RegistryLocation + "-docker.pkg.dev"
}

// ImageRef builds the fully qualified image URI for the given name and tag.
func (o DeployOutputs) ImageRef(imageName, imageTag string) string {
	return fmt.Sprintf("%s/%s/%s/%s:%s",
		o.RegistryHost(), o.ProjectID, o.RegistryRepository, imageName, imageTag)
}

// ActionsSecrets maps the deploy outputs to the repository secret names the
// CI workflow expects. discordToken is included under DISCORD_BOT_TOKEN only
// when non-empty.
func (o DeployOutputs) ActionsSecrets(discordToken string) map[string]string {
	secrets := map[string]string{
		"WIF_PROVIDER":        o.WIFProvider,
		"WIF_SERVICE_ACCOUNT": o.WIFServiceAccount,
		"GCP_PROJECT_ID":      o.ProjectID,
		"GAR_LOCATION":        o.RegistryLocation,
		"GAR_REPOSITORY":      o.RegistryRepository,
		"SERVICE_NAME":        o.ServiceName,
	}
	if discordToken != "" {
		secrets["DISCORD_BOT_TOKEN"] = discordToken
	}
	return secrets
}
