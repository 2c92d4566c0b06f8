// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import "github.com/MKhiriev/go-pwman/models"

// MatchRecord is a single search hit: either an entry together with the
// folder holding it, or a folder alone.
type MatchRecord struct {
	folder *models.Folder
	entry  *models.Entry
}

// EntryMatch builds the record of an entry hit inside folder.
func EntryMatch(folder *models.Folder, entry *models.Entry) MatchRecord {
	return MatchRecord{folder: folder, entry: entry}
}

// FolderMatch builds the record of a folder-name hit.
func FolderMatch(folder *models.Folder) MatchRecord {
	return MatchRecord{folder: folder}
}

// Folder returns the matched folder, or the folder holding the matched entry.
func (r MatchRecord) Folder() *models.Folder {
	return r.folder
}

// Entry returns the matched entry, or nil for a folder match.
func (r MatchRecord) Entry() *models.Entry {
	return r.entry
}

// IsFolder reports whether the record is a folder-name match.
func (r MatchRecord) IsFolder() bool {
	return r.entry == nil
}

// ResultList is an ordered, append-only sequence of match records. Order is
// the order in which the walker produced them.
type ResultList struct {
	records []MatchRecord
}

// NewResultList returns an empty list.
func NewResultList() *ResultList {
	return &ResultList{}
}

// Append adds r at the end of the list.
func (l *ResultList) Append(r MatchRecord) {
	l.records = append(l.records, r)
}

// Clear drops every record. Clearing an empty list is a no-op.
func (l *ResultList) Clear() {
	l.records = nil
}

// IsEmpty reports whether the list holds no records.
func (l *ResultList) IsEmpty() bool {
	return len(l.records) == 0
}

// Len returns the number of records.
func (l *ResultList) Len() int {
	return len(l.records)
}

// At returns the i-th record.
func (l *ResultList) At(i int) (MatchRecord, bool) {
	if i < 0 || i >= len(l.records) {
		return MatchRecord{}, false
	}
	return l.records[i], true
}

// Records returns a copy of the records in order.
func (l *ResultList) Records() []MatchRecord {
	out := make([]MatchRecord, len(l.records))
	copy(out, l.records)
	return out
}
