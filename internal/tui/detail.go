package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateDetail(msg tea.KeyMsg) (mainLoopModel, tea.Cmd) {
	entry := m.selected.entry

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.back):
		m.screen = screenList
		m.selected = row{}
		m.reveal = false
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		if entry != nil {
			return m, cmdCopyToClipboard(entry, copyPasswd)
		}
	case key.Matches(msg, keys.copyUser):
		if entry != nil {
			return m, cmdCopyToClipboard(entry, copyUser)
		}
	}

	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	entry := m.selected.entry
	if entry == nil {
		return renderPage("ENTRY", "", m.help.View(detailHelp{}))
	}

	passwd := maskedPassword
	if m.reveal {
		passwd = valueOrDash(entry.Passwd)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name:     %s\n", valueOrDash(entry.Name))
	fmt.Fprintf(&b, "Host:     %s\n", valueOrDash(entry.Host))
	fmt.Fprintf(&b, "User:     %s\n", valueOrDash(entry.User))
	fmt.Fprintf(&b, "Password: %s\n", passwd)
	fmt.Fprintf(&b, "Launch:   %s\n", valueOrDash(entry.Launch))
	fmt.Fprintf(&b, "Folder:   %s\n", folderPath(m.state.Tree(), m.selected.folder))
	b.WriteString(m.renderStatus())

	return renderPage("ENTRY │ "+valueOrDash(entry.Name), b.String(), m.help.View(detailHelp{}))
}
