// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scan funcs.
type rowScanner interface {
	Scan(dest ...any) error
}

// TableSpec binds one vault record type to its table. The generic repository
// is entirely driven by this description: no per-kind SQL exists anywhere
// else.
//
// InsertColumns and Values must be aligned element-for-element. user_id is
// expected to be the first insert column; Update skips it so a record can
// never change owner.
type TableSpec[T any] struct {
	// Table is the table name.
	Table string

	// KeyColumn is the column holding the per-owner unique key
	// (title or nickname).
	KeyColumn string

	// InsertColumns lists the client-supplied columns, user_id first.
	InsertColumns []string

	// SelectColumns lists every persisted column in scan order:
	// id, user_id, the client-supplied fields, created_at.
	SelectColumns []string

	// Values extracts the insert arguments from a record, aligned with
	// InsertColumns.
	Values func(record T) []any

	// Scan reads one row (laid out as SelectColumns) into a record.
	Scan func(row rowScanner) (T, error)
}

func buildInsertQuery[T any](spec TableSpec[T], record T) (string, []any, error) {
	query, args, err := psql.
		Insert(spec.Table).
		Columns(spec.InsertColumns...).
		Values(spec.Values(record)...).
		Suffix("RETURNING " + strings.Join(spec.SelectColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllByUserQuery[T any](spec TableSpec[T], userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(spec.SelectColumns...).
		From(spec.Table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectByIDQuery[T any](spec TableSpec[T], id int64) (string, []any, error) {
	query, args, err := psql.
		Select(spec.SelectColumns...).
		From(spec.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectByUserAndKeyQuery[T any](spec TableSpec[T], userID int64, key string) (string, []any, error) {
	query, args, err := psql.
		Select(spec.SelectColumns...).
		From(spec.Table).
		Where(sq.Eq{"user_id": userID, spec.KeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateQuery[T any](spec TableSpec[T], id int64, record T) (string, []any, error) {
	values := spec.Values(record)

	// user_id is deliberately skipped: ownership is immutable.
	setMap := make(map[string]any, len(spec.InsertColumns))
	for i, column := range spec.InsertColumns {
		if column == "user_id" {
			continue
		}
		setMap[column] = values[i]
	}

	query, args, err := psql.
		Update(spec.Table).
		SetMap(setMap).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteQuery[T any](spec TableSpec[T], id int64) (string, []any, error) {
	query, args, err := psql.
		Delete(spec.Table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
