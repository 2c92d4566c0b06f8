// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"testing"

	"github.com/MKhiriev/go-pwman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── MatchRecord ──────────────────────────────────────────────────────────────

func TestMatchRecord_Variants(t *testing.T) {
	f := &models.Folder{Name: ptr("Work")}
	e := &models.Entry{Host: ptr("work.example.com")}

	folderHit := FolderMatch(f)
	assert.True(t, folderHit.IsFolder())
	assert.Same(t, f, folderHit.Folder())
	assert.Nil(t, folderHit.Entry())

	entryHit := EntryMatch(f, e)
	assert.False(t, entryHit.IsFolder())
	assert.Same(t, f, entryHit.Folder())
	assert.Same(t, e, entryHit.Entry())
}

// ── ResultList ───────────────────────────────────────────────────────────────

func TestResultList_AppendKeepsOrder(t *testing.T) {
	l := NewResultList()
	require.True(t, l.IsEmpty())

	folders := []*models.Folder{{Name: ptr("a")}, {Name: ptr("b")}, {Name: ptr("c")}}
	for _, f := range folders {
		l.Append(FolderMatch(f))
	}

	assert.False(t, l.IsEmpty())
	require.Equal(t, 3, l.Len())
	for i, f := range folders {
		r, ok := l.At(i)
		require.True(t, ok)
		assert.Same(t, f, r.Folder())
	}
}

func TestResultList_AtOutOfRange(t *testing.T) {
	l := NewResultList()
	l.Append(FolderMatch(&models.Folder{}))

	_, ok := l.At(-1)
	assert.False(t, ok)
	_, ok = l.At(1)
	assert.False(t, ok)
}

func TestResultList_ClearIsIdempotent(t *testing.T) {
	l := NewResultList()
	l.Clear()
	assert.True(t, l.IsEmpty())

	l.Append(FolderMatch(&models.Folder{}))
	l.Clear()
	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Len())
}

func TestResultList_RecordsReturnsCopy(t *testing.T) {
	l := NewResultList()
	l.Append(FolderMatch(&models.Folder{Name: ptr("a")}))

	out := l.Records()
	out[0] = FolderMatch(&models.Folder{Name: ptr("changed")})

	r, _ := l.At(0)
	assert.Equal(t, "a", r.Folder().DisplayName())
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestSession_StartsInactive(t *testing.T) {
	s := NewSession()

	assert.Empty(t, s.Term())
	assert.False(t, s.HasResults())
	assert.Zero(t, s.ResultCount())
	assert.Empty(t, s.Results())
}

func TestSession_PublishReplacesList(t *testing.T) {
	s := NewSession()

	first := NewResultList()
	first.Append(FolderMatch(&models.Folder{Name: ptr("first")}))
	s.publish(first)
	require.Equal(t, 1, s.ResultCount())

	second := NewResultList()
	second.Append(FolderMatch(&models.Folder{Name: ptr("x")}))
	second.Append(FolderMatch(&models.Folder{Name: ptr("y")}))
	s.publish(second)

	require.Equal(t, 2, s.ResultCount())
	r, ok := s.Result(1)
	require.True(t, ok)
	assert.Equal(t, "y", r.Folder().DisplayName())

	s.clearResults()
	assert.False(t, s.HasResults())
}
