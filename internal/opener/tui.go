// Copyright (c) 2026 The decodiff authors.
// SPDX-License-Identifier: Apache-2.0

package opener

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// selectFiles prompts for which of the created files to open. It returns the
// selection, or nil when the user quits without choosing.
func selectFiles(files []string) []string {
	p := tea.NewProgram(model{files: files})
	m, err := p.Run()
	if err != nil {
		return nil
	}
	return m.(model).selected
}

type model struct {
	files    []string
	cursor   int
	selected []string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			m.selected = nil
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case "a":
			m.selected = m.files
			return m, tea.Quit
		case "enter":
			m.selected = []string{m.files[m.cursor]}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := "Open the created files?\n\n"
	for i, file := range m.files {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s\n", cursor, file)
	}
	return s + "\nENTER: open, A: open all, Q/ESCAPE: quit\n"
}
