// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned when the user aborts a mandatory prompt.
var ErrUserQuit = errors.New("user quit")

// ErrNothingToCopy is reported when the selected entry has no value for the
// requested field.
var ErrNothingToCopy = errors.New("nothing to copy")
