// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import "sync"

// Session holds the search term and the results of the last completed
// traversal. Only the [Controller] mutates it; readers always see either an
// empty list or a fully built one.
type Session struct {
	mu      sync.RWMutex
	term    string
	results *ResultList
}

// NewSession returns an inactive session with no results.
func NewSession() *Session {
	return &Session{results: NewResultList()}
}

// Term returns the stored search term; empty means no active search.
func (s *Session) Term() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Results returns the published records in traversal order.
func (s *Session) Results() []MatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results.Records()
}

// Result returns the i-th published record.
func (s *Session) Result(i int) (MatchRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results.At(i)
}

// ResultCount returns the number of published records.
func (s *Session) ResultCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results.Len()
}

// HasResults reports whether at least one record is published.
func (s *Session) HasResults() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.results.IsEmpty()
}

func (s *Session) setTerm(term string) {
	s.mu.Lock()
	s.term = term
	s.mu.Unlock()
}

func (s *Session) clearResults() {
	s.mu.Lock()
	s.results.Clear()
	s.mu.Unlock()
}

func (s *Session) publish(list *ResultList) {
	s.mu.Lock()
	s.results = list
	s.mu.Unlock()
}
