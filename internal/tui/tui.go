// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/internal/search"
	"github.com/MKhiriev/go-pwman/internal/vault"
	"github.com/MKhiriev/go-pwman/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Action tells the application what to do after the main loop returned.
type Action int

const (
	// ActionQuit ends the application.
	ActionQuit Action = iota
	// ActionSearch asks for a new search term and restarts the main loop.
	ActionSearch
)

var (
	_ search.Prompter      = (*TUI)(nil)
	_ search.StatusBar     = (*TUI)(nil)
	_ search.ViewRefresher = (*TUI)(nil)
)

type runFunc func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

func runProgram(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// TUI is the terminal front end of the vault. Besides running the
// interactive screens it serves as the status bar, view refresher and text
// prompter of the search controller.
type TUI struct {
	buildInfo        models.AppBuildInfo
	clipboardTimeout time.Duration
	logger           *logger.Logger
	run              runFunc

	mu      sync.Mutex
	status  string
	refresh bool

	// the pending wipe outlives the program that copied the secret
	clipMu    sync.Mutex
	clipText  string
	clipTimer *time.Timer
}

// New creates a TUI. Copied secrets are wiped from the clipboard after
// clipboardTimeout; zero keeps them.
func New(buildInfo models.AppBuildInfo, clipboardTimeout time.Duration, log *logger.Logger) (*TUI, error) {
	if clipboardTimeout < 0 {
		return nil, errors.New("tui: negative clipboard timeout")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		buildInfo:        buildInfo,
		clipboardTimeout: clipboardTimeout,
		logger:           log,
		run:              runProgram,
	}, nil
}

// StatusClear empties the status line.
func (t *TUI) StatusClear() {
	t.mu.Lock()
	t.status = ""
	t.mu.Unlock()
}

// StatusMessage shows text on the status line.
func (t *TUI) StatusMessage(text string) {
	t.mu.Lock()
	t.status = text
	t.mu.Unlock()
}

// Status returns the text currently on the status line.
func (t *TUI) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// RefreshView marks the navigable view as stale. The main loop rebuilds it
// after the message being handled, or on start when no loop is running.
func (t *TUI) RefreshView() {
	t.mu.Lock()
	t.refresh = true
	t.mu.Unlock()
}

func (t *TUI) takeRefresh() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending := t.refresh
	t.refresh = false
	return pending
}

// AskText shows a one-line prompt prefilled with def. ok is false when the
// user cancelled it.
func (t *TUI) AskText(ctx context.Context, prompt, def string) (string, bool, error) {
	return t.ask(ctx, newPromptModel(prompt, def, false))
}

// AskPassword asks for a secret with masked echo. A cancelled prompt yields
// [ErrUserQuit].
func (t *TUI) AskPassword(ctx context.Context, prompt string) (string, error) {
	text, ok, err := t.ask(ctx, newPromptModel(prompt, "", true))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrUserQuit
	}
	return text, nil
}

func (t *TUI) ask(ctx context.Context, model promptModel) (string, bool, error) {
	finalModel, err := t.run(model, tea.WithContext(ctx), tea.WithAltScreen())
	if err != nil {
		return "", false, fmt.Errorf("run prompt: %w", err)
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", false, tea.ErrProgramKilled
	}
	if !result.submitted {
		return "", false, nil
	}
	return result.Value(), true, nil
}

// MainLoop runs the vault browser over state until the user quits or asks
// for a search.
func (t *TUI) MainLoop(ctx context.Context, ctrl *search.Controller, state *vault.State) (Action, error) {
	model := newMainLoopModel(t, ctrl, state)
	finalModel, err := t.run(model, tea.WithContext(ctx), tea.WithAltScreen())
	if err != nil {
		t.flushClipboard()
		return ActionQuit, fmt.Errorf("run main loop: %w", err)
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		t.flushClipboard()
		return ActionQuit, tea.ErrProgramKilled
	}
	if result.action == ActionQuit {
		t.flushClipboard()
	}
	return result.action, nil
}

// scheduleClipboardWipe removes text from the clipboard once the clipboard
// timeout elapses. A later copy replaces the pending wipe.
func (t *TUI) scheduleClipboardWipe(text string) {
	if t.clipboardTimeout <= 0 {
		return
	}

	t.clipMu.Lock()
	defer t.clipMu.Unlock()

	if t.clipTimer != nil {
		t.clipTimer.Stop()
	}
	t.clipText = text
	t.clipTimer = time.AfterFunc(t.clipboardTimeout, t.flushClipboard)
}

// flushClipboard runs the pending wipe now, if there is one.
func (t *TUI) flushClipboard() {
	t.clipMu.Lock()
	text := t.clipText
	t.clipText = ""
	if t.clipTimer != nil {
		t.clipTimer.Stop()
		t.clipTimer = nil
	}
	t.clipMu.Unlock()

	if text != "" {
		t.wipeClipboard(text)
	}
}

// wipeClipboard clears the clipboard unless something else was copied since
// text.
func (t *TUI) wipeClipboard(text string) {
	current, err := readClipboard()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.wipeClipboard").Msg("failed to read clipboard")
		return
	}
	if current != text {
		return
	}
	if err = writeClipboard(""); err != nil {
		t.logger.Err(err).Str("func", "TUI.wipeClipboard").Msg("failed to clear clipboard")
		return
	}
	t.logger.Debug().Str("func", "TUI.wipeClipboard").Msg("clipboard cleared")
}
