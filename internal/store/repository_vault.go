// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pwman/internal/crypto"
	"github.com/MKhiriev/go-pwman/internal/logger"
	"github.com/MKhiriev/go-pwman/models"
	"github.com/rs/zerolog"
)

// insertBatchSize bounds the rows of one INSERT so a statement stays well
// below the sqlite host parameter limit.
const insertBatchSize = 100

type vaultRepository struct {
	db       *DB
	keychain crypto.KeyChain
	logger   *logger.Logger

	mu  sync.RWMutex
	dek []byte
}

// NewVaultRepository returns a locked [VaultRepository] over db.
func NewVaultRepository(db *DB, keychain crypto.KeyChain, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		db:       db,
		keychain: keychain,
		logger:   logger,
	}
}

func (r *vaultRepository) Unlock(ctx context.Context, masterPassword string) error {
	log := r.loggerFrom(ctx)

	query, args, err := buildSelectVaultMetaQuery()
	if err != nil {
		return err
	}

	var salt, wrappedDEK []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&salt, &wrappedDEK)
	if errors.Is(err, sql.ErrNoRows) {
		return r.initKeys(ctx, masterPassword)
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Unlock").
			Msg("failed to read vault key material")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	kek := r.keychain.DeriveKEK(masterPassword, salt)
	dek, err := r.keychain.UnwrapDEK(wrappedDEK, kek)
	if errors.Is(err, crypto.ErrDecryption) {
		log.Warn().
			Str("func", "vaultRepository.Unlock").
			Msg("master password rejected")
		return ErrWrongMasterPassword
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Unlock").
			Msg("failed to unwrap data key")
		return fmt.Errorf("unwrap data key: %w", err)
	}

	r.setDEK(dek)
	log.Debug().Str("func", "vaultRepository.Unlock").Msg("vault unlocked")
	return nil
}

// initKeys creates and stores the key material of a new vault.
func (r *vaultRepository) initKeys(ctx context.Context, masterPassword string) error {
	log := r.loggerFrom(ctx)

	salt, err := r.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	dek, err := r.keychain.GenerateDEK()
	if err != nil {
		return fmt.Errorf("generate data key: %w", err)
	}
	wrappedDEK, err := r.keychain.WrapDEK(dek, r.keychain.DeriveKEK(masterPassword, salt))
	if err != nil {
		return fmt.Errorf("wrap data key: %w", err)
	}

	query, args, err := buildInsertVaultMetaQuery(salt, wrappedDEK)
	if err != nil {
		return err
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.initKeys").
			Msg("failed to store vault key material")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.setDEK(dek)
	log.Info().Str("func", "vaultRepository.initKeys").Msg("new vault initialised")
	return nil
}

func (r *vaultRepository) LoadTree(ctx context.Context) (*models.Tree, error) {
	log := r.loggerFrom(ctx)

	dek, err := r.key()
	if err != nil {
		return nil, err
	}

	folders, err := r.selectFolders(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := r.selectEntries(ctx)
	if err != nil {
		return nil, err
	}

	tree, ids, err := buildTree(folders)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.LoadTree").
			Int("folders", len(folders)).
			Msg("stored folders do not form a tree")
		return nil, err
	}

	for _, row := range entries {
		folderID, ok := ids[row.FolderID]
		if !ok {
			log.Error().
				Str("func", "vaultRepository.LoadTree").
				Str("entry_id", row.ID).
				Int64("folder_id", row.FolderID).
				Msg("entry refers to a missing folder")
			return nil, fmt.Errorf("%w: entry %s has no folder", ErrCorruptedVault, row.ID)
		}

		entry, err := r.entryFromRow(row, dek)
		if err != nil {
			log.Err(err).
				Str("func", "vaultRepository.LoadTree").
				Str("entry_id", row.ID).
				Msg("failed to decrypt entry secret")
			return nil, err
		}
		if err = tree.AddEntry(folderID, entry); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
	}

	log.Debug().
		Str("func", "vaultRepository.LoadTree").
		Int("folders", tree.Len()).
		Int("entries", len(entries)).
		Msg("vault tree loaded")
	return tree, nil
}

func (r *vaultRepository) SaveTree(ctx context.Context, tree *models.Tree) (err error) {
	log := r.loggerFrom(ctx)

	dek, err := r.key()
	if err != nil {
		return err
	}

	folders, entries, err := r.flattenTree(tree, dek)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.SaveTree").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{entriesTable, foldersTable} {
		query, args, buildErr := buildDeleteAllQuery(table)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "vaultRepository.SaveTree").
				Str("table", table).
				Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for start := 0; start < len(folders); start += insertBatchSize {
		query, args, buildErr := buildInsertFoldersQuery(folders[start:min(start+insertBatchSize, len(folders))])
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "vaultRepository.SaveTree").Msg("failed to insert folders")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for start := 0; start < len(entries); start += insertBatchSize {
		query, args, buildErr := buildInsertEntriesQuery(entries[start:min(start+insertBatchSize, len(entries))])
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "vaultRepository.SaveTree").Msg("failed to insert entries")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRepository.SaveTree").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "vaultRepository.SaveTree").
		Int("folders", len(folders)).
		Int("entries", len(entries)).
		Msg("vault tree saved")
	return nil
}

func (r *vaultRepository) selectFolders(ctx context.Context) ([]folderRow, error) {
	query, args, err := buildSelectFoldersQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.loggerFrom(ctx).Err(err).
			Str("func", "vaultRepository.selectFolders").
			Msg("failed to query folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []folderRow
	for rows.Next() {
		var f folderRow
		if err = rows.Scan(&f.ID, &f.ParentID, &f.Position, &f.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

func (r *vaultRepository) selectEntries(ctx context.Context) ([]entryRow, error) {
	query, args, err := buildSelectEntriesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.loggerFrom(ctx).Err(err).
			Str("func", "vaultRepository.selectEntries").
			Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []entryRow
	for rows.Next() {
		var e entryRow
		if err = rows.Scan(&e.ID, &e.FolderID, &e.Position, &e.Name, &e.Host, &e.User, &e.Passwd, &e.Launch); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

// buildTree rebuilds the arena from folder rows ordered by id. The first row
// must be the only root; every other row must name an already seen parent.
func buildTree(rows []folderRow) (*models.Tree, map[int64]models.FolderID, error) {
	if len(rows) == 0 {
		tree := models.NewTree(models.DefaultRootName)
		return tree, map[int64]models.FolderID{}, nil
	}

	root := rows[0]
	if root.ParentID.Valid {
		return nil, nil, fmt.Errorf("%w: first folder %d is not a root", ErrCorruptedVault, root.ID)
	}

	tree := models.NewTree(root.Name.String)
	if !root.Name.Valid {
		tree.Folder(tree.Root()).Name = nil
	}
	ids := map[int64]models.FolderID{root.ID: tree.Root()}

	for _, row := range rows[1:] {
		if !row.ParentID.Valid {
			return nil, nil, fmt.Errorf("%w: second root folder %d", ErrCorruptedVault, row.ID)
		}
		parent, ok := ids[row.ParentID.Int64]
		if !ok {
			return nil, nil, fmt.Errorf("%w: folder %d has no parent %d", ErrCorruptedVault, row.ID, row.ParentID.Int64)
		}

		id, err := tree.AddFolder(parent, row.Name.String)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrCorruptedVault, err)
		}
		if !row.Name.Valid {
			tree.Folder(id).Name = nil
		}
		ids[row.ID] = id
	}

	return tree, ids, nil
}

// flattenTree turns tree into rows, sealing every passwd with dek. Folder
// rows keep the arena ID so that loading in id order restores sibling order.
func (r *vaultRepository) flattenTree(tree *models.Tree, dek []byte) ([]folderRow, []entryRow, error) {
	folders := make([]folderRow, 0, tree.Len())
	var entries []entryRow

	position := make(map[models.FolderID]int, tree.Len())
	for i := 0; i < tree.Len(); i++ {
		f := tree.Folder(models.FolderID(i))

		row := folderRow{ID: int64(f.ID), Name: nullString(f.Name)}
		if f.Parent != models.NoFolder {
			row.ParentID = sql.NullInt64{Int64: int64(f.Parent), Valid: true}
			row.Position = position[f.Parent]
			position[f.Parent]++
		}
		folders = append(folders, row)

		for pos, e := range f.Entries {
			passwd, err := r.sealPasswd(e.Passwd, dek)
			if err != nil {
				return nil, nil, fmt.Errorf("seal secret of entry %s: %w", e.ID, err)
			}
			entries = append(entries, entryRow{
				ID:       e.ID,
				FolderID: int64(f.ID),
				Position: pos,
				Name:     nullString(e.Name),
				Host:     nullString(e.Host),
				User:     nullString(e.User),
				Passwd:   passwd,
				Launch:   nullString(e.Launch),
			})
		}
	}

	return folders, entries, nil
}

func (r *vaultRepository) entryFromRow(row entryRow, dek []byte) (*models.Entry, error) {
	e := &models.Entry{
		ID:     row.ID,
		Name:   stringPtr(row.Name),
		Host:   stringPtr(row.Host),
		User:   stringPtr(row.User),
		Launch: stringPtr(row.Launch),
	}
	if row.Passwd.Valid {
		plain, err := r.keychain.Open(row.Passwd.String, dek)
		if err != nil {
			return nil, fmt.Errorf("open secret of entry %s: %w", row.ID, err)
		}
		e.Passwd = &plain
	}
	return e, nil
}

func (r *vaultRepository) sealPasswd(passwd *string, dek []byte) (sql.NullString, error) {
	if passwd == nil {
		return sql.NullString{}, nil
	}
	sealed, err := r.keychain.Seal(*passwd, dek)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: sealed, Valid: true}, nil
}

// loggerFrom prefers the request logger carried by ctx.
func (r *vaultRepository) loggerFrom(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return r.logger
}

func (r *vaultRepository) key() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.dek == nil {
		return nil, ErrVaultLocked
	}
	return r.dek, nil
}

func (r *vaultRepository) setDEK(dek []byte) {
	r.mu.Lock()
	r.dek = dek
	r.mu.Unlock()
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
