// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault holds the in-memory state of an opened vault: the folder
// tree, the folder currently shown by the UI, and helpers to build a tree
// from an exported JSON document.
package vault
