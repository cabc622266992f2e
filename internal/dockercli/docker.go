// SPDX-License-Identifier: Apache-2.0

package dockercli

import (
	"context"
	"fmt"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/logger"
)

const binary = "docker"

// DefaultPlatform is what Cloud Run executes, regardless of the machine the
// image was built on.
const DefaultPlatform = "linux/amd64"

type docker struct {
	runner execx.CommandRunner
	log    *logger.Logger
}

// NewDocker constructs a [Docker] over the given command runner.
func NewDocker(runner execx.CommandRunner, log *logger.Logger) Docker {
	if log == nil {
		log = logger.Nop()
	}
	return &docker{runner: runner, log: log}
}

func (d *docker) run(ctx context.Context, args ...string) (execx.Result, error) {
	res, err := d.runner.Run(ctx, binary, args...)
	if err != nil {
		return res, fmt.Errorf("docker %s: %w", args[0], err)
	}
	if !res.Ok() {
		return res, fmt.Errorf("docker %s exited %d: %s",
			args[0], res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return res, nil
}

func (d *docker) Ping(ctx context.Context) error {
	if _, err := d.runner.LookPath(binary); err != nil {
		return fmt.Errorf("docker is not installed: %w", err)
	}
	res, err := d.runner.Run(ctx, binary, "info", "--format", "{{.ServerVersion}}")
	if err != nil {
		return fmt.Errorf("docker info: %w", err)
	}
	if !res.Ok() {
		return fmt.Errorf("docker daemon is not running: %s", strings.TrimSpace(res.Stderr))
	}
	return nil
}

func (d *docker) Version(ctx context.Context) (string, error) {
	res, err := d.run(ctx, "version", "--format", "{{.Client.Version}}")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (d *docker) Build(ctx context.Context, contextDir, imageURI, platform string) error {
	if platform == "" {
		platform = DefaultPlatform
	}
	d.log.Info().Str("image", imageURI).Str("platform", platform).Msg("building image")
	_, err := d.run(ctx, "build",
		"--platform", platform,
		"-t", imageURI,
		contextDir)
	return err
}

func (d *docker) Push(ctx context.Context, imageURI string) error {
	d.log.Info().Str("image", imageURI).Msg("pushing image")
	_, err := d.run(ctx, "push", imageURI)
	return err
}
