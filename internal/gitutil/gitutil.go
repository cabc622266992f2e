// SPDX-License-Identifier: Apache-2.0

// Package gitutil reads repository identity out of the local git checkout.
package gitutil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/models"
)

// ErrNoOrigin is returned when the working directory has no usable origin
// remote.
var ErrNoOrigin = errors.New("no origin remote")

// DetectRepository resolves the GitHub repository the current directory's
// origin remote points at.
func DetectRepository(ctx context.Context, runner execx.CommandRunner) (models.Repository, error) {
	res, err := runner.Run(ctx, "git", "remote", "get-url", "origin")
	if err != nil {
		return models.Repository{}, fmt.Errorf("git remote get-url: %w", err)
	}
	if !res.Ok() {
		return models.Repository{}, ErrNoOrigin
	}
	return ParseRemoteURL(strings.TrimSpace(res.Stdout))
}

// ParseRemoteURL extracts owner and name from a GitHub remote URL in either
// SSH (git@github.com:owner/name.git) or HTTPS
// (https://github.com/owner/name.git) form.
func ParseRemoteURL(remote string) (models.Repository, error) {
	var path string
	switch {
	case strings.HasPrefix(remote, "git@github.com:"):
		path = strings.TrimPrefix(remote, "git@github.com:")
	case strings.HasPrefix(remote, "ssh://git@github.com/"):
		path = strings.TrimPrefix(remote, "ssh://git@github.com/")
	case strings.HasPrefix(remote, "https://github.com/"):
		path = strings.TrimPrefix(remote, "https://github.com/")
	case strings.HasPrefix(remote, "http://github.com/"):
		path = strings.TrimPrefix(remote, "http://github.com/")
	default:
		return models.Repository{}, fmt.Errorf("remote %q is not a github.com URL", remote)
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.Repository{}, fmt.Errorf("remote %q: expected owner/name, got %q", remote, path)
	}
	return models.Repository{Owner: parts[0], Name: parts[1]}, nil
}
