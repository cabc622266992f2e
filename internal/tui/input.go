// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	prompt  string
	input   textinput.Model
	secret  bool
	done    bool
	aborted bool
}

func newInputModel(prompt, def string, secret bool) inputModel {
	input := textinput.New()
	input.Placeholder = def
	input.CharLimit = 256
	input.Width = 60
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()
	return inputModel{prompt: prompt, input: input, secret: secret}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done && m.secret {
		// Leave no trace of the masked value on screen.
		return promptStyle.Render(m.prompt) + "\n"
	}
	return promptStyle.Render(m.prompt) + "\n" + m.input.View() + "\n"
}
