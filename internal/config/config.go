// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// DefaultConfigFile is the JSON config file looked for in the working
// directory when no explicit path is given.
const DefaultConfigFile = "build_config.json"

// BuildConfig is the top-level configuration for a deploy run. It is
// populated by merging command-line flags, environment variables, and an
// optional JSON file over the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type BuildConfig struct {
	// GCP holds project and region settings.
	GCP GCP `envPrefix:"GCP_" json:"gcp,omitempty"`

	// Registry holds Artifact Registry settings for the image repository.
	Registry Registry `envPrefix:"GAR_" json:"registry,omitempty"`

	// Service holds the Cloud Run service identity and image naming.
	Service Service `envPrefix:"SERVICE_" json:"service,omitempty"`

	// GitHub holds credentials for the repository secrets API. The token
	// is stored sealed; the plaintext form exists only in memory.
	GitHub GitHub `envPrefix:"GITHUB_" json:"github,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag. When empty, [DefaultConfigFile] is used.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// GCP identifies the target Google Cloud project.
type GCP struct {
	// ProjectID is the target project. When empty, the active gcloud
	// config project is used, with an interactive fallback.
	ProjectID string `env:"PROJECT_ID" json:"project_id"`
	// Region is the Cloud Run region.
	Region string `env:"REGION" json:"region"`
}

// Registry configures the Artifact Registry Docker repository.
type Registry struct {
	// Location is the registry location; usually equal to the Cloud Run
	// region.
	Location string `env:"LOCATION" json:"location"`
	// Repository is the Artifact Registry repository name.
	Repository string `env:"REPOSITORY" json:"repository"`
}

// Service configures the Cloud Run service and the image pushed for it.
type Service struct {
	// Name is the Cloud Run service name.
	Name string `env:"NAME" json:"name"`
	// ImageName is the image name inside the registry repository.
	ImageName string `env:"IMAGE_NAME" json:"image_name"`
	// ImageTag is the tag builds are pushed under.
	ImageTag string `env:"IMAGE_TAG" json:"image_tag"`
	// ContextDir is the docker build context. Defaults to the current
	// directory.
	ContextDir string `env:"CONTEXT_DIR" json:"context_dir"`
	// Memory is the Cloud Run memory limit, e.g. "512Mi".
	Memory string `env:"MEMORY" json:"memory"`
	// CPU is the Cloud Run CPU limit, e.g. "1".
	CPU string `env:"CPU" json:"cpu"`
	// MinInstances is the minimum instance count. Zero scales to zero.
	MinInstances int `env:"MIN_INSTANCES" json:"min_instances"`
	// MaxInstances caps the instance count. Zero keeps the platform default.
	MaxInstances int `env:"MAX_INSTANCES" json:"max_instances"`
}

// GitHub holds repository-secrets credentials and API client settings.
type GitHub struct {
	// SealedToken is the personal access token encrypted at rest with the
	// operator's passphrase. Never holds plaintext.
	SealedToken string `env:"SEALED_TOKEN" json:"sealed_token"`
	// APIBaseURL overrides the GitHub API endpoint, for GitHub Enterprise
	// installs. Empty means api.github.com.
	APIBaseURL string `env:"API_BASE_URL" json:"api_base_url,omitempty"`
	// Timeout bounds each GitHub API request.
	Timeout Duration `env:"TIMEOUT" json:"timeout"`
	// AppID, AppInstallationID and AppKeyPath select GitHub App
	// authentication instead of a personal access token. All three must be
	// set together; AppKeyPath points at the app's RSA private key PEM.
	AppID             string `env:"APP_ID" json:"app_id,omitempty"`
	AppInstallationID string `env:"APP_INSTALLATION_ID" json:"app_installation_id,omitempty"`
	AppKeyPath        string `env:"APP_KEY_PATH" json:"app_key_path,omitempty"`
}

// UsesApp reports whether GitHub App credentials are configured.
func (g GitHub) UsesApp() bool {
	return g.AppID != "" && g.AppInstallationID != "" && g.AppKeyPath != ""
}

// defaults returns the built-in configuration a fresh checkout starts from.
func defaults() *BuildConfig {
	cfg := &BuildConfig{}
	cfg.GCP.Region = "asia-northeast3"
	cfg.Registry.Location = "asia-northeast3"
	cfg.Registry.Repository = "discord-epistulus-repo"
	cfg.Service.Name = "discord-epistulus-service"
	cfg.Service.ImageName = "discord-epistulus"
	cfg.Service.ImageTag = "latest"
	cfg.Service.ContextDir = "."
	cfg.Service.Memory = "512Mi"
	cfg.Service.CPU = "1"
	cfg.GitHub.Timeout = Duration(15 * time.Second)
	return cfg
}
