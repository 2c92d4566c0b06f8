// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/models"
)

const searchPrompt = "String to search for:"

// IsActive reports whether term describes an active search.
func IsActive(term string) bool {
	return term != ""
}

// Controller orchestrates term acquisition, traversal, the result lifecycle
// and status reporting.
type Controller struct {
	session  *Session
	tree     TreeState
	matcher  Matcher
	prompter Prompter
	status   StatusBar
	view     ViewRefresher
	logger   *logger.Logger
}

// NewController wires a controller around session using the default
// substring matcher. A nil log discards output.
func NewController(
	session *Session,
	tree TreeState,
	prompter Prompter,
	status StatusBar,
	view ViewRefresher,
	log *logger.Logger,
) *Controller {
	if log == nil {
		log = logger.Nop()
	}

	return &Controller{
		session:  session,
		tree:     tree,
		matcher:  NewMatcher(),
		prompter: prompter,
		status:   status,
		view:     view,
		logger:   log,
	}
}

// Session returns the session the controller publishes into.
func (c *Controller) Session() *Session {
	return c.session
}

// Term returns the current search term.
func (c *Controller) Term() string {
	return c.session.Term()
}

// Active reports whether the stored term describes an active search.
func (c *Controller) Active() bool {
	return IsActive(c.session.Term())
}

// Apply discards the previous results and, when the stored term is active,
// walks the tree from its root and publishes the new results. Calling Apply
// again with the same term yields the same records in the same order.
func (c *Controller) Apply() {
	c.session.clearResults()

	term := c.session.Term()
	if !IsActive(term) {
		return
	}

	list := NewResultList()
	w := NewWalker(c.tree.Tree(), term, c.matcher)
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		if !v.Matched {
			continue
		}
		list.Append(v.Record())

		if v.Entry != nil {
			c.logger.Debug().
				Str("func", "Controller.Apply").
				Str("host", models.StringValue(v.Entry.Host)).
				Msg("matched entry")
		} else {
			c.logger.Debug().
				Str("func", "Controller.Apply").
				Str("folder", v.Folder.DisplayName()).
				Msg("matched folder")
		}
	}

	if w.Truncated() {
		c.logger.Debug().
			Str("func", "Controller.Apply").
			Int("max_depth", MaxDepth).
			Msg("search depth limit reached, deeper folders skipped")
	}

	c.session.publish(list)

	c.logger.Debug().
		Str("func", "Controller.Apply").
		Int("term_len", len(term)).
		Int("results", list.Len()).
		Msg("search applied")
}

// SetTermAndApply replaces the stored term, re-runs the search, resets the
// selection cursor of the current view and asks for a redraw.
func (c *Controller) SetTermAndApply(term string) {
	c.session.setTerm(term)
	c.Apply()

	if f := c.tree.Tree().Folder(c.tree.CurrentView()); f != nil {
		f.CurrentItem = models.NoSelection
	}
	c.view.RefreshView()
}

// Prompt asks the user for a new term and applies it. A cancelled prompt
// leaves the term unset, which ends any active search.
func (c *Controller) Prompt(ctx context.Context) error {
	text, ok, err := c.prompter.AskText(ctx, searchPrompt, "")
	if err != nil {
		c.logger.Err(err).Str("func", "Controller.Prompt").Msg("failed to ask search term")
		return fmt.Errorf("ask search term: %w", err)
	}
	if !ok {
		text = ""
	}

	c.SetTermAndApply(text)
	return nil
}

// Dismiss leaves search mode: the current view goes back to the root with
// nothing selected, results and term are cleared and the view is redrawn.
func (c *Controller) Dismiss() {
	root := c.tree.Root()
	c.tree.SetCurrentView(root)
	if f := c.tree.Tree().Folder(root); f != nil {
		f.CurrentItem = models.NoSelection
	}

	c.session.clearResults()
	c.session.setTerm("")

	c.view.RefreshView()
}

// ReportStatus writes a short summary of the search for term to the status
// area. It does nothing when term is inactive.
func (c *Controller) ReportStatus(term string) {
	if !IsActive(term) {
		return
	}

	var msg string
	if c.session.HasResults() {
		msg = fmt.Sprintf("(Search results for '%s')", term)
	} else {
		msg = fmt.Sprintf("(No results found for '%s')", term)
	}

	c.status.StatusClear()
	c.status.StatusMessage(msg)
}
