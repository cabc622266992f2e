// SPDX-License-Identifier: Apache-2.0

package tui

import tea "github.com/charmbracelet/bubbletea"

type confirmModel struct {
	prompt   string
	answer   bool
	answered bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y", "enter":
		m.answer = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.answer = false
		m.answered = true
		return m, tea.Quit
	case "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		mark := declineStyle.Render("no")
		if m.answer {
			mark = answerStyle.Render("yes")
		}
		return promptStyle.Render(m.prompt) + " " + mark + "\n"
	}
	return promptStyle.Render(m.prompt) + " " + helpStyle.Render("y yes    n no") + "\n"
}
