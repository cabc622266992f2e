// Package config provides configuration loading, merging, and validation
// for the deploy toolkit.
//
// Configuration is assembled from multiple sources; a field keeps the first
// non-zero value it gets, in this priority order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (build_config.json by default, created on first run)
//  4. Built-in defaults
//
// The main entry point is [Load].
package config
