// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pwman/models"
)

// ErrEmptyDocument is returned by [ImportJSON] when the input holds no JSON
// value.
var ErrEmptyDocument = errors.New("empty vault document")

// ErrDuplicateEntryID is returned by [ImportJSON] when two entries of the
// document share an ID.
var ErrDuplicateEntryID = errors.New("duplicate entry id")

// IDGenerator issues storage identifiers for imported entries.
type IDGenerator interface {
	Generate() string
}

// folderDocument is the exported form of a folder:
//
//	{"name": "Main", "entries": [{"name": "..."}], "folders": [{...}]}
type folderDocument struct {
	Name    *string          `json:"name"`
	Entries []*models.Entry  `json:"entries"`
	Folders []folderDocument `json:"folders"`
}

// ImportJSON decodes a nested folder document into a new tree. The top-level
// document becomes the root folder. Entries without an ID get one from ids.
func ImportJSON(r io.Reader, ids IDGenerator) (*models.Tree, error) {
	var doc folderDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("decode vault document: %w", err)
	}

	rootName := models.DefaultRootName
	if doc.Name != nil && *doc.Name != "" {
		rootName = *doc.Name
	}

	tree := models.NewTree(rootName)
	seen := make(map[string]struct{})
	if err := importFolder(tree, tree.Root(), doc, ids, seen); err != nil {
		return nil, err
	}
	return tree, nil
}

func importFolder(tree *models.Tree, id models.FolderID, doc folderDocument, ids IDGenerator, seen map[string]struct{}) error {
	for _, e := range doc.Entries {
		if e == nil {
			continue
		}
		if e.ID == "" {
			e.ID = ids.Generate()
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("import entry %q: %w", e.ID, ErrDuplicateEntryID)
		}
		seen[e.ID] = struct{}{}

		if err := tree.AddEntry(id, e); err != nil {
			return fmt.Errorf("import entry: %w", err)
		}
	}

	for _, child := range doc.Folders {
		childID, err := tree.AddFolder(id, models.StringValue(child.Name))
		if err != nil {
			return fmt.Errorf("import folder: %w", err)
		}
		if child.Name == nil {
			tree.Folder(childID).Name = nil
		}
		if err = importFolder(tree, childID, child, ids, seen); err != nil {
			return err
		}
	}
	return nil
}
