// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"strings"

	"github.com/MKhiriev/go-pwman/models"
)

type substringMatcher struct{}

// NewMatcher returns the case-insensitive substring [Matcher].
//
// A folder matches when the term occurs in its name. An entry matches when
// the term occurs in any of its name, host, user, passwd or launch fields.
// Nil or empty fields never match, and neither does an empty term.
func NewMatcher() Matcher {
	return substringMatcher{}
}

func (substringMatcher) MatchFolder(term string, folder *models.Folder) bool {
	if folder == nil {
		return false
	}
	return containsFold(folder.Name, term)
}

func (substringMatcher) MatchEntry(term string, entry *models.Entry) bool {
	if entry == nil {
		return false
	}

	for _, field := range entry.Fields() {
		if containsFold(field, term) {
			return true
		}
	}
	return false
}

func containsFold(haystack *string, needle string) bool {
	if haystack == nil || *haystack == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(*haystack), strings.ToLower(needle))
}
