// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import "github.com/MKhiriev/go-pwman/models"

// MaxDepth is the deepest folder level the walker descends into. Folders at
// this depth still have their entries visited, their children are skipped.
const MaxDepth = 32

// Visit is a single event produced by [Walker.Next].
type Visit struct {
	// Folder is the visited folder, or the folder holding Entry.
	Folder *models.Folder

	// Entry is the visited entry; nil for folder visits.
	Entry *models.Entry

	// Matched reports whether the matcher accepted the node.
	Matched bool
}

// Record converts the visit into a [MatchRecord].
func (v Visit) Record() MatchRecord {
	if v.Entry != nil {
		return EntryMatch(v.Folder, v.Entry)
	}
	return FolderMatch(v.Folder)
}

type walkPhase int

const (
	phaseDescend walkPhase = iota
	phaseEntries
	phaseSibling
	phaseDone
)

// Walker is a lazy, finite, non-restartable pre-order traversal of a
// [models.Tree].
//
// A child folder is tested as soon as it is reached, before any entries of
// its parent; the entries of a folder are visited once all its descendants
// have been walked. The root folder itself is never tested.
type Walker struct {
	tree    *models.Tree
	term    string
	matcher Matcher

	stack        [MaxDepth]models.FolderID
	depth        int
	current      models.FolderID
	phase        walkPhase
	entry        int
	steppingBack bool
	truncated    bool
}

// NewWalker prepares a traversal of tree from its root. Nothing is visited
// until [Walker.Next] is called.
func NewWalker(tree *models.Tree, term string, matcher Matcher) *Walker {
	w := &Walker{
		tree:    tree,
		term:    term,
		matcher: matcher,
		phase:   phaseDone,
		current: models.NoFolder,
	}
	for i := range w.stack {
		w.stack[i] = models.NoFolder
	}

	if tree != nil && tree.Folder(tree.Root()) != nil {
		w.current = tree.Root()
		w.phase = phaseDescend
	}
	return w
}

// Next returns the next visit. The second result is false once the
// traversal is complete; every later call also returns false.
func (w *Walker) Next() (Visit, bool) {
	for {
		switch w.phase {
		case phaseDescend:
			f := w.tree.Folder(w.current)
			if !w.steppingBack && f.HasChildren() {
				if w.depth < MaxDepth {
					w.stack[w.depth] = w.current
					w.depth++
					w.current = f.FirstChild
					return w.visitFolder(w.current), true
				}
				w.truncated = true
			}
			w.steppingBack = false
			w.entry = 0
			w.phase = phaseEntries

		case phaseEntries:
			f := w.tree.Folder(w.current)
			if w.entry < len(f.Entries) {
				e := f.Entries[w.entry]
				w.entry++
				return Visit{Folder: f, Entry: e, Matched: w.matcher.MatchEntry(w.term, e)}, true
			}
			w.phase = phaseSibling

		case phaseSibling:
			f := w.tree.Folder(w.current)
			if f.NextSibling != models.NoFolder {
				w.current = f.NextSibling
				w.phase = phaseDescend
				return w.visitFolder(w.current), true
			}

			w.depth--
			if w.depth < 0 {
				w.phase = phaseDone
				return Visit{}, false
			}
			w.current = w.stack[w.depth]
			w.stack[w.depth] = models.NoFolder
			w.steppingBack = true
			w.phase = phaseDescend

		default:
			return Visit{}, false
		}
	}
}

// Truncated reports whether the walk met a folder at [MaxDepth] that has
// children it did not descend into.
func (w *Walker) Truncated() bool {
	return w.truncated
}

func (w *Walker) visitFolder(id models.FolderID) Visit {
	f := w.tree.Folder(id)
	return Visit{Folder: f, Matched: w.matcher.MatchFolder(w.term, f)}
}
