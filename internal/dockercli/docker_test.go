// SPDX-License-Identifier: Apache-2.0

package dockercli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loldruger/epistulus-deploy/internal/dockercli"
	"github.com/loldruger/epistulus-deploy/internal/execx"
	"github.com/loldruger/epistulus-deploy/internal/mock"
)

const imageURI = "asia-northeast3-docker.pkg.dev/epistulus-prod/discord-epistulus-repo/discord-epistulus:latest"

func TestPing_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("docker").Return("", errors.New("executable file not found in $PATH"))

	d := dockercli.NewDocker(runner, nil)
	err := d.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}

func TestPing_DaemonDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("docker").Return("/usr/bin/docker", nil)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "info", "--format", "{{.ServerVersion}}").
		Return(execx.Result{Stderr: "Cannot connect to the Docker daemon", ExitCode: 1}, nil)

	d := dockercli.NewDocker(runner, nil)
	err := d.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daemon is not running")
}

func TestPing_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().LookPath("docker").Return("/usr/bin/docker", nil)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "info", "--format", "{{.ServerVersion}}").
		Return(execx.Result{Stdout: "27.0.3\n", ExitCode: 0}, nil)

	d := dockercli.NewDocker(runner, nil)
	assert.NoError(t, d.Ping(context.Background()))
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "version", "--format", "{{.Client.Version}}").
		Return(execx.Result{Stdout: "27.0.3\n", ExitCode: 0}, nil)

	d := dockercli.NewDocker(runner, nil)
	version, err := d.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "27.0.3", version)
}

func TestBuild_DefaultsPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "build",
			"--platform", "linux/amd64",
			"-t", imageURI,
			".").
		Return(execx.Result{ExitCode: 0}, nil)

	d := dockercli.NewDocker(runner, nil)
	assert.NoError(t, d.Build(context.Background(), ".", imageURI, ""))
}

func TestBuild_FailureCarriesStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "build",
			"--platform", "linux/amd64",
			"-t", imageURI,
			".").
		Return(execx.Result{Stderr: "no such file: Dockerfile", ExitCode: 1}, nil)

	d := dockercli.NewDocker(runner, nil)
	err := d.Build(context.Background(), ".", imageURI, "linux/amd64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dockerfile")
}

func TestPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), "docker", "push", imageURI).
		Return(execx.Result{ExitCode: 0}, nil)

	d := dockercli.NewDocker(runner, nil)
	assert.NoError(t, d.Push(context.Background(), imageURI))
}
