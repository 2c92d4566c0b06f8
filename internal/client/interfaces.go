// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pwman/internal/search"
	"github.com/MKhiriev/go-pwman/internal/tui"
	"github.com/MKhiriev/go-pwman/internal/vault"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the terminal front end driven by [App].
type UI interface {
	search.Prompter
	search.StatusBar
	search.ViewRefresher

	// AskPassword asks for the master password with masked echo.
	AskPassword(ctx context.Context, prompt string) (string, error)

	// MainLoop shows the vault until the user quits or asks for a search.
	MainLoop(ctx context.Context, ctrl *search.Controller, state *vault.State) (tui.Action, error)
}
