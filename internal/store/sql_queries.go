// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	vaultMetaTable = "vault_meta"
	foldersTable   = "folders"
	entriesTable   = "entries"

	// vaultMetaID is the primary key of the single key-material row.
	vaultMetaID = 1
)

var (
	folderColumns = []string{"id", "parent_id", "position", "name"}
	entryColumns  = []string{"id", "folder_id", "position", "name", "host", "user", "passwd", "launch"}
)

// qb builds queries with sqlite "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// folderRow is a folders table row.
type folderRow struct {
	ID       int64
	ParentID sql.NullInt64
	Position int
	Name     sql.NullString
}

// entryRow is an entries table row; Passwd holds the sealed secret.
type entryRow struct {
	ID       string
	FolderID int64
	Position int
	Name     sql.NullString
	Host     sql.NullString
	User     sql.NullString
	Passwd   sql.NullString
	Launch   sql.NullString
}

func buildSelectVaultMetaQuery() (string, []any, error) {
	query, args, err := qb.
		Select("salt", "wrapped_dek").
		From(vaultMetaTable).
		Where(sq.Eq{"id": vaultMetaID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertVaultMetaQuery(salt, wrappedDEK []byte) (string, []any, error) {
	query, args, err := qb.
		Insert(vaultMetaTable).
		Columns("id", "salt", "wrapped_dek").
		Values(vaultMetaID, salt, wrappedDEK).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectFoldersQuery() (string, []any, error) {
	query, args, err := qb.
		Select(folderColumns...).
		From(foldersTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectEntriesQuery() (string, []any, error) {
	query, args, err := qb.
		Select(entryColumns...).
		From(entriesTable).
		OrderBy("folder_id", "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllQuery(table string) (string, []any, error) {
	query, args, err := qb.Delete(table).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertFoldersQuery(rows []folderRow) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, nil
	}

	b := qb.Insert(foldersTable).Columns(folderColumns...)
	for _, r := range rows {
		b = b.Values(r.ID, r.ParentID, r.Position, r.Name)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertEntriesQuery(rows []entryRow) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, nil
	}

	b := qb.Insert(entriesTable).Columns(entryColumns...)
	for _, r := range rows {
		b = b.Values(r.ID, r.FolderID, r.Position, r.Name, r.Host, r.User, r.Passwd, r.Launch)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
