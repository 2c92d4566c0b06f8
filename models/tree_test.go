// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewTree ──────────────────────────────────────────────────────────────────

func TestNewTree_RootOnly(t *testing.T) {
	tree := NewTree("Main")

	require.Equal(t, 1, tree.Len())
	root := tree.Folder(tree.Root())
	require.NotNil(t, root)
	assert.Equal(t, "Main", root.DisplayName())
	assert.Equal(t, NoFolder, root.Parent)
	assert.Equal(t, NoFolder, root.FirstChild)
	assert.Equal(t, NoFolder, root.NextSibling)
	assert.Equal(t, NoSelection, root.CurrentItem)
	assert.False(t, root.HasChildren())
}

// ── AddFolder ────────────────────────────────────────────────────────────────

func TestAddFolder_KeepsSiblingOrder(t *testing.T) {
	tree := NewTree("Main")

	a, err := tree.AddFolder(tree.Root(), "a")
	require.NoError(t, err)
	b, err := tree.AddFolder(tree.Root(), "b")
	require.NoError(t, err)
	c, err := tree.AddFolder(tree.Root(), "c")
	require.NoError(t, err)

	assert.Equal(t, []FolderID{a, b, c}, tree.Children(tree.Root()))
	assert.Equal(t, a, tree.Folder(tree.Root()).FirstChild)
	assert.Equal(t, b, tree.Folder(a).NextSibling)
	assert.Equal(t, NoFolder, tree.Folder(c).NextSibling)
}

func TestAddFolder_UnknownParent(t *testing.T) {
	tree := NewTree("Main")

	id, err := tree.AddFolder(FolderID(42), "x")
	assert.ErrorIs(t, err, ErrUnknownFolder)
	assert.Equal(t, NoFolder, id)
	assert.Equal(t, 1, tree.Len())
}

// ── AddEntry ─────────────────────────────────────────────────────────────────

func TestAddEntry_AppendsInOrder(t *testing.T) {
	tree := NewTree("Main")
	e1 := &Entry{Name: StringPtr("one")}
	e2 := &Entry{Name: StringPtr("two")}

	require.NoError(t, tree.AddEntry(tree.Root(), e1))
	require.NoError(t, tree.AddEntry(tree.Root(), e2))

	assert.Equal(t, []*Entry{e1, e2}, tree.Folder(tree.Root()).Entries)
}

func TestAddEntry_UnknownFolder(t *testing.T) {
	tree := NewTree("Main")
	assert.ErrorIs(t, tree.AddEntry(NoFolder, &Entry{}), ErrUnknownFolder)
}

// ── Depth ────────────────────────────────────────────────────────────────────

func TestDepth(t *testing.T) {
	tree := NewTree("Main")
	a, _ := tree.AddFolder(tree.Root(), "a")
	b, _ := tree.AddFolder(a, "b")

	assert.Equal(t, 0, tree.Depth(tree.Root()))
	assert.Equal(t, 1, tree.Depth(a))
	assert.Equal(t, 2, tree.Depth(b))
	assert.Equal(t, -1, tree.Depth(FolderID(99)))
}

func TestFolder_OutOfRange(t *testing.T) {
	tree := NewTree("Main")
	assert.Nil(t, tree.Folder(NoFolder))
	assert.Nil(t, tree.Folder(FolderID(1)))
	assert.Nil(t, tree.Children(FolderID(7)))
}

func TestEntry_FieldsOrder(t *testing.T) {
	e := &Entry{
		Name:   StringPtr("n"),
		Host:   StringPtr("h"),
		User:   StringPtr("u"),
		Passwd: StringPtr("p"),
		Launch: StringPtr("l"),
	}

	got := make([]string, 0, 5)
	for _, f := range e.Fields() {
		got = append(got, StringValue(f))
	}
	assert.Equal(t, []string{"n", "h", "u", "p", "l"}, got)
	assert.Equal(t, "", StringValue(nil))
}
