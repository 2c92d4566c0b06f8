package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pwman/internal/search"
	"github.com/MKhiriev/go-pwman/internal/vault"
	"github.com/MKhiriev/go-pwman/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenBuildInfo
)

type copyField int

const (
	copyPasswd copyField = iota
	copyUser
)

// row is one line of the navigable view. A row without entry opens folder;
// otherwise folder is the folder holding entry.
type row struct {
	folder *models.Folder
	entry  *models.Entry
}

type mainLoopModel struct {
	ui    *TUI
	ctrl  *search.Controller
	state *vault.State
	help  help.Model

	screen   screen
	selected row
	reveal   bool
	flash    string
	errMsg   string
	action   Action
}

func newMainLoopModel(ui *TUI, ctrl *search.Controller, state *vault.State) mainLoopModel {
	return mainLoopModel{
		ui:     ui,
		ctrl:   ctrl,
		state:  state,
		help:   help.New(),
		action: ActionQuit,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	m.ui.takeRefresh()
	m.ui.StatusClear()
	m.ctrl.ReportStatus(m.ctrl.Term())
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.applyRefresh()
	return next, cmd
}

// applyRefresh rebuilds what depends on the search state once the
// controller asked for a redraw.
func (m *mainLoopModel) applyRefresh() {
	if !m.ui.takeRefresh() {
		return
	}

	if f := m.state.Current(); f != nil {
		f.CurrentItem = clampCursor(f.CurrentItem, len(m.rows()))
	}
	m.ui.StatusClear()
	m.ctrl.ReportStatus(m.ctrl.Term())
}

func (m mainLoopModel) update(msg tea.Msg) (mainLoopModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case copiedMsg:
		m.errMsg = ""
		m.flash = "Copied " + msg.what
		m.ui.scheduleClipboardWipe(msg.text)
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.flash = ""
		m.errMsg = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.flash = ""
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.action = ActionQuit
			return m, tea.Quit
		}

		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenBuildInfo:
			if key.Matches(msg, keys.esc) {
				m.screen = screenList
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (mainLoopModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.search):
		m.action = ActionSearch
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.enter):
		r, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		if r.entry == nil {
			m.openFolder(r.folder)
			return m, nil
		}
		m.screen = screenDetail
		m.selected = r
		m.reveal = false
	case key.Matches(msg, keys.back):
		if !m.ctrl.Active() {
			m.state.Ascend()
		}
	case key.Matches(msg, keys.esc):
		if m.ctrl.Active() {
			m.ctrl.Dismiss()
		}
	case key.Matches(msg, keys.copy):
		if r, ok := m.selectedRow(); ok && r.entry != nil {
			return m, cmdCopyToClipboard(r.entry, copyPasswd)
		}
	case key.Matches(msg, keys.copyUser):
		if r, ok := m.selectedRow(); ok && r.entry != nil {
			return m, cmdCopyToClipboard(r.entry, copyUser)
		}
	case key.Matches(msg, keys.buildInfo):
		m.screen = screenBuildInfo
	}

	return m, nil
}

// openFolder shows f. Opening a folder from the result list ends the search.
func (m *mainLoopModel) openFolder(f *models.Folder) {
	if f == nil {
		return
	}
	if m.ctrl.Active() {
		m.ctrl.Dismiss()
	}
	m.state.SetCurrentView(f.ID)
}

// rows lists the search results while a search is active and the content of
// the current folder otherwise: child folders first, then entries.
func (m mainLoopModel) rows() []row {
	if m.ctrl.Active() {
		records := m.ctrl.Session().Results()
		out := make([]row, 0, len(records))
		for _, r := range records {
			out = append(out, row{folder: r.Folder(), entry: r.Entry()})
		}
		return out
	}

	cur := m.state.Current()
	if cur == nil {
		return nil
	}

	tree := m.state.Tree()
	var out []row
	for _, id := range tree.Children(cur.ID) {
		out = append(out, row{folder: tree.Folder(id)})
	}
	for _, e := range cur.Entries {
		out = append(out, row{folder: cur, entry: e})
	}
	return out
}

func (m mainLoopModel) cursor() int {
	if f := m.state.Current(); f != nil {
		return f.CurrentItem
	}
	return models.NoSelection
}

func (m *mainLoopModel) moveCursor(delta int) {
	f := m.state.Current()
	if f == nil {
		return
	}
	f.CurrentItem = moveCursor(f.CurrentItem, delta, len(m.rows()))
}

func (m mainLoopModel) selectedRow() (row, bool) {
	rows := m.rows()
	cur := m.cursor()
	if cur < 0 || cur >= len(rows) {
		return row{}, false
	}
	return rows[cur], true
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenBuildInfo:
		return renderBuildInfoWindow(m.ui.buildInfo)
	}

	var title string
	var hotKeys string
	if m.ctrl.Active() {
		title = fmt.Sprintf("PWMAN │ search: %s", m.ctrl.Term())
		hotKeys = m.help.View(resultsHelp{})
	} else {
		title = "PWMAN │ " + strings.Join(m.state.Path(), "/")
		hotKeys = m.help.View(treeHelp{})
	}

	var b strings.Builder
	rows := m.rows()
	cur := m.cursor()
	for i, r := range rows {
		line := m.renderRow(r)
		if i == cur {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())

	return renderPage(title, b.String(), hotKeys)
}

func (m mainLoopModel) renderRow(r row) string {
	tree := m.state.Tree()
	if r.entry == nil {
		if m.ctrl.Active() {
			return folderStyle.Render("[folder] " + folderPath(tree, r.folder))
		}
		return folderStyle.Render(r.folder.DisplayName() + "/")
	}

	line := fmt.Sprintf("%-24s %-28s %s",
		fitText(valueOrDash(r.entry.Name), 24),
		fitText(valueOrDash(r.entry.Host), 28),
		fitText(valueOrDash(r.entry.User), 20),
	)
	if m.ctrl.Active() {
		line += helpStyle.Render("  in " + folderPath(tree, r.folder))
	}
	return line
}

func (m mainLoopModel) renderStatus() string {
	var parts []string
	if s := m.ui.Status(); s != "" {
		parts = append(parts, statusStyle.Render(s))
	}
	if m.flash != "" {
		parts = append(parts, statusStyle.Render(m.flash))
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	return strings.Join(parts, "  ")
}

// folderPath joins the folder names from the root down to f.
func folderPath(tree *models.Tree, f *models.Folder) string {
	var names []string
	for ; f != nil; f = tree.Folder(f.Parent) {
		names = append([]string{f.DisplayName()}, names...)
	}
	return strings.Join(names, "/")
}

func cmdCopyToClipboard(entry *models.Entry, field copyField) tea.Cmd {
	return func() tea.Msg {
		what, value := "password", entry.Passwd
		if field == copyUser {
			what, value = "user", entry.User
		}

		text := models.StringValue(value)
		if text == "" {
			return copyFailedMsg{err: fmt.Errorf("copy %s: %w", what, ErrNothingToCopy)}
		}
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what, text: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
