// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pwman/internal/config"
	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/internal/search"
	"github.com/MKhiriev/go-pwman/internal/store"
	"github.com/MKhiriev/go-pwman/internal/tui"
	"github.com/MKhiriev/go-pwman/internal/vault"
	"github.com/MKhiriev/go-pwman/models"
)

const (
	masterPasswordPrompt = "Master password:"
	maxUnlockAttempts    = 3
)

// App is the vault application: one unlocked vault, one search session and
// the terminal UI showing both.
type App struct {
	cfg    *config.ClientConfig
	repo   store.VaultRepository
	ui     UI
	ids    vault.IDGenerator
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the application. ids issues identifiers for imported entries.
func NewApp(cfg *config.ClientConfig, repo store.VaultRepository, ui UI, ids vault.IDGenerator, log *logger.Logger) (*App, error) {
	switch {
	case cfg == nil:
		return nil, ErrNilConfig
	case repo == nil:
		return nil, ErrNilRepository
	case ui == nil:
		return nil, ErrNilUI
	case ids == nil:
		return nil, ErrNilIDGenerator
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:    cfg,
		repo:   repo,
		ui:     ui,
		ids:    ids,
		logger: log,
	}, nil
}

// Run unlocks the vault, loads its tree and runs the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	if err := a.unlock(ctx); err != nil {
		return err
	}

	tree, err := a.loadTree(ctx)
	if err != nil {
		return err
	}

	state := vault.NewState(tree)
	ctrl := search.NewController(search.NewSession(), state, a.ui, a.ui, a.ui, a.logger)
	if term := a.cfg.Search.Term; term != "" {
		ctrl.SetTermAndApply(term)
	}

	for {
		action, err := a.ui.MainLoop(ctx, ctrl, state)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if action != tui.ActionSearch {
			a.logger.Info().Msg("user quit")
			return nil
		}

		if err = ctrl.Prompt(ctx); err != nil {
			return err
		}
	}
}

// unlock opens the vault with the configured master password. Without one
// the user is asked up to maxUnlockAttempts times.
func (a *App) unlock(ctx context.Context) error {
	if pass := a.cfg.App.MasterPassword; pass != "" {
		if err := a.repo.Unlock(ctx, pass); err != nil {
			return fmt.Errorf("unlock vault: %w", err)
		}
		return nil
	}

	for attempt := 1; ; attempt++ {
		pass, err := a.ui.AskPassword(ctx, masterPasswordPrompt)
		if err != nil {
			return fmt.Errorf("ask master password: %w", err)
		}

		if pass == "" {
			err = ErrEmptyMasterPassword
		} else {
			err = a.repo.Unlock(ctx, pass)
		}
		if err == nil {
			return nil
		}

		retry := errors.Is(err, store.ErrWrongMasterPassword) || errors.Is(err, ErrEmptyMasterPassword)
		if !retry || attempt >= maxUnlockAttempts {
			return fmt.Errorf("unlock vault: %w", err)
		}
		a.logger.Warn().Err(err).Int("attempt", attempt).Msg("unlock failed, asking again")
	}
}

// loadTree returns the stored tree, or imports the configured document and
// stores it in place of the current content.
func (a *App) loadTree(ctx context.Context) (*models.Tree, error) {
	if path := a.cfg.ImportFilePath; path != "" {
		return a.importTree(ctx, path)
	}

	tree, err := a.repo.LoadTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}
	return tree, nil
}

func (a *App) importTree(ctx context.Context, path string) (*models.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	tree, err := vault.ImportJSON(f, a.ids)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}

	if err = a.repo.SaveTree(ctx, tree); err != nil {
		return nil, fmt.Errorf("save imported vault: %w", err)
	}

	a.logger.Info().
		Str("path", path).
		Int("folders", tree.Len()).
		Msg("vault imported")
	return tree, nil
}
