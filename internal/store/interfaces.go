package store

import (
	"context"

	"github.com/MKhiriev/go-pwman/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists the folder tree of a single local vault.
type VaultRepository interface {
	// Unlock derives the vault key from masterPassword. On an empty vault it
	// creates the key material instead.
	Unlock(ctx context.Context, masterPassword string) error

	// LoadTree reads the whole folder tree with secrets decrypted.
	LoadTree(ctx context.Context) (*models.Tree, error)

	// SaveTree replaces the stored tree with tree.
	SaveTree(ctx context.Context, tree *models.Tree) error
}
