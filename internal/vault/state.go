// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"sync"

	"github.com/MKhiriev/go-pwman/models"
)

// State is the process-wide view of an opened vault. It owns the tree and
// remembers which folder the display layer is showing.
type State struct {
	mu      sync.RWMutex
	tree    *models.Tree
	current models.FolderID
}

// NewState wraps tree with the current view set to its root. A nil tree is
// replaced by an empty vault.
func NewState(tree *models.Tree) *State {
	if tree == nil {
		tree = models.NewTree(models.DefaultRootName)
	}
	return &State{tree: tree, current: tree.Root()}
}

// Tree returns the vault tree.
func (s *State) Tree() *models.Tree {
	return s.tree
}

// Root returns the root folder ID.
func (s *State) Root() models.FolderID {
	return s.tree.Root()
}

// CurrentView returns the folder currently shown.
func (s *State) CurrentView() models.FolderID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrentView switches the shown folder. Unknown IDs are ignored.
func (s *State) SetCurrentView(id models.FolderID) {
	if s.tree.Folder(id) == nil {
		return
	}

	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
}

// Current returns the folder currently shown.
func (s *State) Current() *models.Folder {
	return s.tree.Folder(s.CurrentView())
}

// Ascend moves the current view to its parent folder. It returns false when
// the current view is already the root.
func (s *State) Ascend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.tree.Folder(s.current)
	if f == nil || f.Parent == models.NoFolder {
		return false
	}
	s.current = f.Parent
	return true
}

// Path returns the folder names from the root down to the current view.
func (s *State) Path() []string {
	var names []string
	for f := s.Current(); f != nil; f = s.tree.Folder(f.Parent) {
		names = append([]string{f.DisplayName()}, names...)
	}
	return names
}
