package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	esc       key.Binding
	search    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	reveal    key.Binding
	buildInfo key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
	back:      key.NewBinding(key.WithKeys("backspace", "left", "h"), key.WithHelp("backspace", "parent")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy password")),
	copyUser:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy user")),
	reveal:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "show/hide")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// treeHelp is shown while browsing folders.
type treeHelp struct{}

func (treeHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.up, keys.down, keys.enter, keys.back, keys.search, keys.copy, keys.copyUser, keys.quit}
}

func (h treeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {keys.buildInfo}}
}

// resultsHelp is shown while a search is active.
type resultsHelp struct{}

func (resultsHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.up, keys.down, keys.enter, keys.esc, keys.search, keys.copy, keys.copyUser, keys.quit}
}

func (h resultsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// detailHelp is shown on the entry screen.
type detailHelp struct{}

func (detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.reveal, keys.copy, keys.copyUser, keys.esc}
}

func (h detailHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
