package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/loldruger/epistulus-deploy/internal/logger"
)

// runner is the os/exec backed implementation of [CommandRunner].
type runner struct {
	// dir, when non-empty, is the working directory for every command
	// (the project root for docker build and git).
	dir string

	log *logger.Logger
}

// NewRunner constructs a [CommandRunner] that executes commands in dir
// (empty means the process working directory). Commands are logged at debug
// level with their full argument list; output is captured, never streamed.
func NewRunner(dir string, log *logger.Logger) CommandRunner {
	if log == nil {
		log = logger.Nop()
	}
	return &runner{dir: dir, log: log}
}

func (r *runner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	r.log.Debug().Str("cmd", name+" "+strings.Join(redactArgs(args), " ")).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("command %s: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The process ran and exited non-zero: report via ExitCode so
			// callers can apply their abort-vs-warn policy.
			r.log.Debug().
				Int("exit_code", res.ExitCode).
				Str("stderr", strings.TrimSpace(res.Stderr)).
				Msgf("command %s exited non-zero", name)
			return res, nil
		}
		return res, fmt.Errorf("command %s: %w", name, err)
	}

	return res, nil
}

func (r *runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// secretArgFlags name flags whose value may carry a credential (Cloud Run
// literal env vars include the bot token).
var secretArgFlags = map[string]bool{
	"--set-env-vars": true,
}

// redactArgs masks the value of credential-bearing flags for logging. The
// real argument list is untouched.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	mask := false
	for i, arg := range args {
		switch {
		case mask:
			redacted[i] = "[redacted]"
			mask = false
		case secretArgFlags[arg]:
			redacted[i] = arg
			mask = true
		case strings.Contains(arg, "=") && secretArgFlags[strings.SplitN(arg, "=", 2)[0]]:
			redacted[i] = strings.SplitN(arg, "=", 2)[0] + "=[redacted]"
		default:
			redacted[i] = arg
		}
	}
	return redacted
}
