// SPDX-License-Identifier: Apache-2.0

// Package dockercli builds and pushes container images by driving the local
// docker CLI.
package dockercli

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/docker_mock.go -package=mock

// Docker covers the image operations of a deploy.
type Docker interface {
	// Ping verifies that the docker daemon is up and reachable.
	Ping(ctx context.Context) error
	// Version returns the client version string.
	Version(ctx context.Context) (string, error)
	// Build builds contextDir into an image tagged imageURI for the given
	// platform. Build output streams through to the operator's terminal
	// on the CLI side; here only the exit status matters.
	Build(ctx context.Context, contextDir, imageURI, platform string) error
	// Push uploads the tagged image to its registry.
	Push(ctx context.Context, imageURI string) error
}
