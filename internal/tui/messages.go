package tui

type copiedMsg struct {
	what string
	text string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
