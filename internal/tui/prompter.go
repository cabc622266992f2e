// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrAborted is returned when the operator cancels a prompt (ctrl+c).
var ErrAborted = errors.New("prompt aborted")

// NewPrompter returns an interactive [Prompter]. On a terminal the prompts
// are Bubble Tea widgets; when stdin is a pipe they degrade to plain line
// reads so the tool stays scriptable.
func NewPrompter() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &teaPrompter{}
	}
	return &plainPrompter{in: bufio.NewReader(os.Stdin), out: os.Stderr}
}

type teaPrompter struct{}

func (p *teaPrompter) Confirm(prompt string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{prompt: prompt}).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

func (p *teaPrompter) ReadLine(prompt, def string) (string, error) {
	final, err := tea.NewProgram(newInputModel(prompt, def, false)).Run()
	if err != nil {
		return "", fmt.Errorf("input prompt: %w", err)
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return def, nil
	}
	return value, nil
}

func (p *teaPrompter) ReadSecret(prompt string) (string, error) {
	final, err := tea.NewProgram(newInputModel(prompt, "", true)).Run()
	if err != nil {
		return "", fmt.Errorf("secret prompt: %w", err)
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}

type plainPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *plainPrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *plainPrompter) ReadLine(prompt, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *plainPrompter) ReadSecret(prompt string) (string, error) {
	// Without a terminal there is no echo to suppress.
	fmt.Fprintf(p.out, "%s: ", prompt)
	return p.readLine()
}

func (p *plainPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
