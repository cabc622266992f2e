// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [BuildConfig] satisfies the
// invariants the deploy pipeline relies on. The project ID may legitimately
// be empty here: it is resolved from the active gcloud config, or
// interactively, before the pipeline starts.
func (cfg *BuildConfig) validate() error {
	if cfg.GCP.Region == "" {
		return ErrInvalidGCPConfigs
	}

	if cfg.Registry.Location == "" || cfg.Registry.Repository == "" {
		return ErrInvalidRegistryConfigs
	}

	if cfg.Service.Name == "" || cfg.Service.ImageName == "" || cfg.Service.ImageTag == "" {
		return ErrInvalidServiceConfigs
	}

	return nil
}
