package config

import "errors"

// Validation errors returned by [BuildConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidGCPConfigs indicates missing project/region settings.
	ErrInvalidGCPConfigs = errors.New("invalid gcp configuration")
	// ErrInvalidRegistryConfigs indicates missing Artifact Registry
	// settings.
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidServiceConfigs indicates missing service or image naming.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
)
