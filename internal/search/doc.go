// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package search implements substring search over the vault folder tree.
//
// A [Walker] visits the tree in pre-order with a bounded explicit stack and
// asks a [Matcher] about every folder and entry it reaches. Matches are
// collected into a [ResultList] that the [Controller] publishes through a
// [Session]; the display layer shows the session's results in place of the
// folder view while a search term is active.
//
// Collaborators outside the package (the term prompt, the status line and
// the view refresh) are reached only through the interfaces declared in
// interfaces.go.
package search
