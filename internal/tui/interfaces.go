// SPDX-License-Identifier: Apache-2.0

package tui

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// Prompter collects interactive input from the operator. Implementations
// decide how the question is rendered; callers only see the answer.
type Prompter interface {
	// Confirm asks a yes/no question and returns the operator's choice.
	Confirm(prompt string) (bool, error)
	// ReadLine asks for a single line of text. An empty answer falls back
	// to def.
	ReadLine(prompt, def string) (string, error)
	// ReadSecret asks for a sensitive value. The input is never echoed and
	// the returned string must not be logged by the caller.
	ReadSecret(prompt string) (string, error)
}
