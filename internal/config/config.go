// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for pwman. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the interactive application: the vault
	// passphrase, the log destination and clipboard behaviour.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local vault database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Search holds the search applied right after the vault is opened.
	Search Search `envPrefix:"SEARCH_"`

	// ImportFilePath is an optional JSON folder tree imported into the vault
	// before the interface starts.
	// Populated via the IMPORT environment variable or the -import flag.
	ImportFilePath string `env:"IMPORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// MasterPassword unlocks the vault. When empty the user is asked for it
	// interactively.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// LogFile is where the client writes its log; stdout belongs to the
	// terminal interface.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ClipboardTimeout is how long a copied secret stays on the clipboard
	// (e.g. "30s"). Zero keeps it until overwritten.
	// Env: APP_CLIPBOARD_TIMEOUT
	ClipboardTimeout time.Duration `env:"CLIPBOARD_TIMEOUT"`
}

// Storage groups the configuration for the vault storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite vault database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "/home/user/.pwman/vault.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Search holds the start-up search.
type Search struct {
	// Term is applied once the vault is loaded; empty means no search.
	// Env: SEARCH_TERM
	Term string `env:"TERM"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
