// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FolderID is the index of a folder inside its [Tree] arena.
type FolderID int

const (
	// NoFolder marks an absent parent, child or sibling link.
	NoFolder FolderID = -1

	// NoSelection is the [Folder.CurrentItem] value meaning that the display
	// layer has nothing selected in the folder.
	NoSelection = -1
)

// Folder is a named node of the vault tree.
//
// Folders are linked first-child/next-sibling style through arena indices,
// so a folder never holds a pointer to another folder. Entries are kept in
// their stored order.
type Folder struct {
	// ID is the folder's own index in the arena.
	ID FolderID

	// Name is the display name of the folder. It may be nil.
	Name *string

	// Parent is the enclosing folder, or NoFolder for the root.
	Parent FolderID

	// FirstChild is the first child folder, or NoFolder.
	FirstChild FolderID

	// NextSibling is the following folder with the same parent, or NoFolder.
	NextSibling FolderID

	// Entries are the records stored directly in this folder.
	Entries []*Entry

	// CurrentItem is the selection cursor of the display layer.
	// It is NoSelection when nothing is selected.
	CurrentItem int
}

// HasChildren reports whether the folder has at least one child folder.
func (f *Folder) HasChildren() bool {
	return f.FirstChild != NoFolder
}

// DisplayName returns the folder name or an empty string when it is unset.
func (f *Folder) DisplayName() string {
	if f.Name == nil {
		return ""
	}
	return *f.Name
}
