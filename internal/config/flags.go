// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-project GCP project ID
//	-region Cloud Run region
//	-registry-location Artifact Registry location
//	-registry Artifact Registry repository name
//	-service Cloud Run service name
//	-image image name inside the registry
//	-tag image tag
//	-context docker build context directory
//	-timeout GitHub API request timeout
//	-c/-config json file path with configs
func ParseFlags() *BuildConfig {
	var projectID string
	var region string
	var registryLocation string
	var registryRepository string
	var serviceName string
	var imageName string
	var imageTag string
	var contextDir string
	var apiTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&projectID, "project", "", "GCP project ID")
	flag.StringVar(&region, "region", "", "Cloud Run region")
	flag.StringVar(&registryLocation, "registry-location", "", "Artifact Registry location")
	flag.StringVar(&registryRepository, "registry", "", "Artifact Registry repository name")
	flag.StringVar(&serviceName, "service", "", "Cloud Run service name")
	flag.StringVar(&imageName, "image", "", "Image name")
	flag.StringVar(&imageTag, "tag", "", "Image tag")
	flag.StringVar(&contextDir, "context", "", "Docker build context directory")
	flag.DurationVar(&apiTimeout, "timeout", 0, "GitHub API request timeout")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	cfg := &BuildConfig{JSONFilePath: jsonConfigPath}
	cfg.GCP.ProjectID = projectID
	cfg.GCP.Region = region
	cfg.Registry.Location = registryLocation
	cfg.Registry.Repository = registryRepository
	cfg.Service.Name = serviceName
	cfg.Service.ImageName = imageName
	cfg.Service.ImageTag = imageTag
	cfg.Service.ContextDir = contextDir
	cfg.GitHub.Timeout = Duration(apiTimeout)
	return cfg
}
