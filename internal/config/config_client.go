package config

import (
	"fmt"
	"time"
)

// DefaultDSN is the vault database used when no DSN is configured.
const DefaultDSN = "pwman.db"

// ClientApp holds application settings derived from the shared structured
// config.
type ClientApp struct {
	// MasterPassword unlocks the vault; empty means ask interactively.
	MasterPassword string
	// LogFile is the client log destination; empty means next to the
	// executable.
	LogFile string
	// ClipboardTimeout clears copied secrets after the given duration.
	ClipboardTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSearch holds the start-up search term.
type ClientSearch struct {
	Term string
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Storage contains vault storage settings.
	Storage ClientStorage
	// Search contains the initial search.
	Search ClientSearch
	// ImportFilePath is a JSON tree to import before start; may be empty.
	ImportFilePath string
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultDSN
	}

	return &ClientConfig{
		App: ClientApp{
			MasterPassword:   cfg.App.MasterPassword,
			LogFile:          cfg.App.LogFile,
			ClipboardTimeout: cfg.App.ClipboardTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Search:         ClientSearch{Term: cfg.Search.Term},
		ImportFilePath: cfg.ImportFilePath,
	}
}
