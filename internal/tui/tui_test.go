// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/internal/search"
	"github.com/MKhiriev/go-pwman/internal/vault"
	"github.com/MKhiriev/go-pwman/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// testTree builds:
//
//	Main (bank)
//	├── Work (mail)
//	└── Home (router)
func testTree(t *testing.T) *models.Tree {
	t.Helper()
	tree := models.NewTree("Main")
	work, err := tree.AddFolder(tree.Root(), "Work")
	require.NoError(t, err)
	home, err := tree.AddFolder(tree.Root(), "Home")
	require.NoError(t, err)

	require.NoError(t, tree.AddEntry(work, &models.Entry{
		ID:     "e1",
		Name:   models.StringPtr("mail"),
		Host:   models.StringPtr("work.example.com"),
		User:   models.StringPtr("alice"),
		Passwd: models.StringPtr("s3cret"),
	}))
	require.NoError(t, tree.AddEntry(home, &models.Entry{
		ID:   "e2",
		Name: models.StringPtr("router"),
		Host: models.StringPtr("home.example.com"),
	}))
	require.NoError(t, tree.AddEntry(tree.Root(), &models.Entry{
		ID:   "e3",
		Name: models.StringPtr("bank"),
	}))
	return tree
}

func newTestUI(t *testing.T) (*TUI, *search.Controller, *vault.State) {
	t.Helper()
	state := vault.NewState(testTree(t))
	ui, err := New(models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc123"), 0, logger.Nop())
	require.NoError(t, err)

	ctrl := search.NewController(search.NewSession(), state, ui, ui, ui, logger.Nop())
	return ui, ctrl, state
}

// scriptedRun feeds msgs to the model the way a program would and returns
// the final model.
func scriptedRun(msgs ...tea.Msg) runFunc {
	return func(m tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		for _, msg := range msgs {
			m, _ = m.Update(msg)
		}
		return m, nil
	}
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_NegativeClipboardTimeout(t *testing.T) {
	_, err := New(models.AppBuildInfo{}, -time.Second, logger.Nop())
	assert.Error(t, err)
}

func TestNew_NilLoggerFallsBackToNop(t *testing.T) {
	ui, err := New(models.AppBuildInfo{}, 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, ui.logger)
}

// ── Status bar ───────────────────────────────────────────────────────────────

func TestTUI_Status(t *testing.T) {
	ui, _, _ := newTestUI(t)

	assert.Empty(t, ui.Status())
	ui.StatusMessage("hello")
	assert.Equal(t, "hello", ui.Status())
	ui.StatusClear()
	assert.Empty(t, ui.Status())
}

func TestTUI_RefreshViewIsConsumedOnce(t *testing.T) {
	ui, _, _ := newTestUI(t)

	assert.False(t, ui.takeRefresh())
	ui.RefreshView()
	ui.RefreshView()
	assert.True(t, ui.takeRefresh())
	assert.False(t, ui.takeRefresh())
}

// ── AskText / AskPassword ────────────────────────────────────────────────────

func TestTUI_AskText(t *testing.T) {
	tests := []struct {
		name     string
		def      string
		msgs     []tea.Msg
		wantText string
		wantOK   bool
	}{
		{
			name:     "typed and submitted",
			msgs:     []tea.Msg{keyRunes("wo"), keyRunes("rk"), keyEnter},
			wantText: "work",
			wantOK:   true,
		},
		{
			name:     "default submitted",
			def:      "home",
			msgs:     []tea.Msg{keyEnter},
			wantText: "home",
			wantOK:   true,
		},
		{
			name:   "cancelled",
			msgs:   []tea.Msg{keyRunes("work"), keyEsc},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, _, _ := newTestUI(t)
			ui.run = scriptedRun(tt.msgs...)

			text, ok, err := ui.AskText(context.Background(), "String to search for:", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestTUI_AskText_RunError(t *testing.T) {
	ui, _, _ := newTestUI(t)
	boom := errors.New("tty gone")
	ui.run = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		return nil, boom
	}

	_, ok, err := ui.AskText(context.Background(), "p", "")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestTUI_AskText_UnexpectedModel(t *testing.T) {
	ui, _, _ := newTestUI(t)
	ui.run = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		return mainLoopModel{}, nil
	}

	_, _, err := ui.AskText(context.Background(), "p", "")
	assert.ErrorIs(t, err, tea.ErrProgramKilled)
}

func TestTUI_AskPassword(t *testing.T) {
	ui, _, _ := newTestUI(t)

	ui.run = scriptedRun(keyRunes("master"), keyEnter)
	pass, err := ui.AskPassword(context.Background(), "Master password:")
	require.NoError(t, err)
	assert.Equal(t, "master", pass)

	ui.run = scriptedRun(keyEsc)
	_, err = ui.AskPassword(context.Background(), "Master password:")
	assert.ErrorIs(t, err, ErrUserQuit)
}

func TestPromptModel_SecretIsMasked(t *testing.T) {
	m := newPromptModel("Master password:", "", true)
	next, _ := m.Update(keyRunes("hunter2"))

	view := next.View()
	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "Master password:")
}

// ── MainLoop ─────────────────────────────────────────────────────────────────

func TestTUI_MainLoop(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want Action
	}{
		{name: "quit", msgs: []tea.Msg{keyRunes("q")}, want: ActionQuit},
		{name: "ctrl+c", msgs: []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}}, want: ActionQuit},
		{name: "search", msgs: []tea.Msg{keyDown, keyRunes("/")}, want: ActionSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, ctrl, state := newTestUI(t)
			ui.run = scriptedRun(tt.msgs...)

			action, err := ui.MainLoop(context.Background(), ctrl, state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestTUI_MainLoop_RunError(t *testing.T) {
	ui, ctrl, state := newTestUI(t)
	ui.run = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		return nil, context.Canceled
	}

	action, err := ui.MainLoop(context.Background(), ctrl, state)
	assert.Equal(t, ActionQuit, action)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Search round trip ────────────────────────────────────────────────────────

func TestTUI_PromptThenMainLoopShowsStatus(t *testing.T) {
	ui, ctrl, state := newTestUI(t)

	ui.run = scriptedRun(keyRunes("WORK"), keyEnter)
	require.NoError(t, ctrl.Prompt(context.Background()))
	assert.Equal(t, "WORK", ctrl.Term())

	m := newMainLoopModel(ui, ctrl, state)
	m.Init()
	assert.Equal(t, "(Search results for 'WORK')", ui.Status())
	assert.False(t, ui.takeRefresh())

	ui.run = scriptedRun(keyRunes("nothing-here"), keyEnter)
	require.NoError(t, ctrl.Prompt(context.Background()))
	m.Init()
	assert.Equal(t, "(No results found for 'nothing-here')", ui.Status())
}
