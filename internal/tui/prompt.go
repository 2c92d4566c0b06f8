// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a single-line input screen. The program running it quits on
// submit or cancel; the caller inspects the final model.
type promptModel struct {
	title     string
	input     textinput.Model
	submitted bool
}

func newPromptModel(title, def string, secret bool) promptModel {
	in := textinput.New()
	in.CharLimit = 256
	in.Width = 40
	in.SetValue(def)
	in.CursorEnd()
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	in.Focus()

	return promptModel{title: title, input: in}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.submitted = false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return renderPage(m.title, m.input.View(), helpStyle.Render("enter: confirm │ esc: cancel"))
}

// Value returns the typed text.
func (m promptModel) Value() string {
	return m.input.Value()
}
