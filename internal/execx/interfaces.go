// Package execx wraps subprocess execution behind a small interface so that
// every gcloud / docker / git invocation in the toolkit can be exercised in
// tests without spawning real processes.
package execx

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/command_runner_mock.go -package=mock

// CommandRunner executes one external command and reports its captured
// output and exit code. Implementations must honour ctx cancellation and
// deadlines: the toolkit bounds every invocation with a timeout, and an
// expired context must terminate the child process.
type CommandRunner interface {
	// Run executes name with args and waits for completion. A non-zero exit
	// code is not an error here: callers inspect Result.ExitCode (or Ok())
	// and decide whether the failure aborts the run or is logged and
	// skipped. The returned error is reserved for spawn-level failures
	// (binary not found, context expired before completion).
	Run(ctx context.Context, name string, args ...string) (Result, error)

	// LookPath reports whether the named binary is resolvable on PATH.
	// Used by the prerequisite checks before any command is attempted.
	LookPath(name string) (string, error)
}

// Result carries the observable outcome of one subprocess invocation.
type Result struct {
	// Stdout is the captured standard output, whitespace preserved.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// ExitCode is the process exit status; 0 means success.
	ExitCode int
}

// Ok reports whether the command exited with status 0.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}
