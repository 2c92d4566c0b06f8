// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault application runtime.
//
// It unlocks the vault, loads or imports the folder tree, wires the search
// controller to the terminal UI and alternates between the main loop and the
// search prompt until the user quits.
package client
