package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pwman/internal/config"
	"github.com/MKhiriev/go-pwman/internal/crypto"
	"github.com/MKhiriev/go-pwman/internal/logger"
)

// ClientStorages groups the storage repositories of the application into a
// single value.
type ClientStorages struct {
	// VaultRepository is the SQLite-backed repository of the folder tree.
	VaultRepository VaultRepository

	db *DB
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a locked
//     [VaultRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, keychain crypto.KeyChain, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		VaultRepository: NewVaultRepository(db, keychain, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
