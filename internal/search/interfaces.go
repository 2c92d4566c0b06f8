// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"context"

	"github.com/MKhiriev/go-pwman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/search_mock.go -package=mock

// Prompter obtains free text from the user.
type Prompter interface {
	// AskText blocks until the user submits or cancels the prompt.
	// ok is false when the prompt was cancelled; text is then meaningless.
	AskText(ctx context.Context, prompt, def string) (text string, ok bool, err error)
}

// StatusBar is the write-only status area of the display layer.
type StatusBar interface {
	StatusClear()
	StatusMessage(text string)
}

// ViewRefresher notifies the display layer that the navigable view must be
// redrawn. RefreshView must not fail.
type ViewRefresher interface {
	RefreshView()
}

// TreeState exposes the externally owned folder tree together with the
// folder the display layer is currently showing.
type TreeState interface {
	// Tree returns the vault tree searched by the controller.
	Tree() *models.Tree

	// Root returns the root folder of the tree.
	Root() models.FolderID

	// CurrentView returns the folder currently shown by the display layer.
	CurrentView() models.FolderID

	// SetCurrentView changes the folder shown by the display layer.
	SetCurrentView(id models.FolderID)
}

// Matcher decides whether a single folder or entry satisfies a search term.
type Matcher interface {
	MatchFolder(term string, folder *models.Folder) bool
	MatchEntry(term string, entry *models.Entry) bool
}
