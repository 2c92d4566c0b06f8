// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrUnknownFolder is returned when a [FolderID] does not address a folder of
// the tree.
var ErrUnknownFolder = errors.New("unknown folder")

// DefaultRootName is the name given to the root folder of a new vault.
const DefaultRootName = "Main"

// Tree is an index-addressed arena of folders with a single root.
//
// Folders are only ever appended, so a child always has a larger ID than its
// parent and the sibling chain follows insertion order.
type Tree struct {
	folders []*Folder
	root    FolderID
}

// NewTree creates a tree holding only a root folder with the given name.
func NewTree(rootName string) *Tree {
	t := &Tree{root: 0}
	t.folders = append(t.folders, newFolder(0, NoFolder, rootName))
	return t
}

func newFolder(id, parent FolderID, name string) *Folder {
	return &Folder{
		ID:          id,
		Name:        StringPtr(name),
		Parent:      parent,
		FirstChild:  NoFolder,
		NextSibling: NoFolder,
		CurrentItem: NoSelection,
	}
}

// Root returns the ID of the root folder.
func (t *Tree) Root() FolderID {
	return t.root
}

// Len returns the number of folders in the tree, root included.
func (t *Tree) Len() int {
	return len(t.folders)
}

// Folder returns the folder stored under id, or nil when id is out of range.
func (t *Tree) Folder(id FolderID) *Folder {
	if id < 0 || int(id) >= len(t.folders) {
		return nil
	}
	return t.folders[id]
}

// AddFolder appends a new child folder as the last child of parent and
// returns its ID.
func (t *Tree) AddFolder(parent FolderID, name string) (FolderID, error) {
	p := t.Folder(parent)
	if p == nil {
		return NoFolder, ErrUnknownFolder
	}

	id := FolderID(len(t.folders))
	t.folders = append(t.folders, newFolder(id, parent, name))

	if p.FirstChild == NoFolder {
		p.FirstChild = id
		return id, nil
	}

	last := t.folders[p.FirstChild]
	for last.NextSibling != NoFolder {
		last = t.folders[last.NextSibling]
	}
	last.NextSibling = id

	return id, nil
}

// AddEntry appends entry to the entries of folder.
func (t *Tree) AddEntry(folder FolderID, entry *Entry) error {
	f := t.Folder(folder)
	if f == nil {
		return ErrUnknownFolder
	}
	f.Entries = append(f.Entries, entry)
	return nil
}

// Children returns the child folder IDs of id in sibling order.
func (t *Tree) Children(id FolderID) []FolderID {
	f := t.Folder(id)
	if f == nil {
		return nil
	}

	var children []FolderID
	for c := f.FirstChild; c != NoFolder; c = t.folders[c].NextSibling {
		children = append(children, c)
	}
	return children
}

// Depth returns the number of edges between id and the root, or -1 when id
// is unknown.
func (t *Tree) Depth(id FolderID) int {
	f := t.Folder(id)
	if f == nil {
		return -1
	}

	depth := 0
	for f.Parent != NoFolder {
		depth++
		f = t.folders[f.Parent]
	}
	return depth
}
