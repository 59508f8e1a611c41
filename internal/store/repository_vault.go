package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/jackc/pgerrcode"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. One instance per record kind, configured by a
// [TableSpec]; the methods themselves are kind-agnostic.
type vaultRepository[T any] struct {
	spec   TableSpec[T]
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] for the table described
// by spec.
func NewVaultRepository[T any](db *DB, spec TableSpec[T], logger *logger.Logger) VaultRepository[T] {
	logger.Debug().Str("table", spec.Table).Msg("creating vault repository")
	return &vaultRepository[T]{
		spec:   spec,
		db:     db,
		logger: logger,
	}
}

// Create inserts a record and returns it with server-assigned fields
// (id, created_at) populated from the RETURNING clause.
//
// A unique_violation on the per-owner key index maps to [ErrDuplicateKey];
// the service probes for duplicates before inserting, so hitting the
// constraint means two requests raced.
func (r *vaultRepository[T]) Create(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)
	var empty T

	query, args, err := buildInsertQuery(r.spec, record)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Create").Str("table", r.spec.Table).Msg("error: building query")
		return empty, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.Create").
			Str("table", r.spec.Table).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return empty, ErrDuplicateKey
		default:
			return empty, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := r.spec.Scan(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return empty, ErrDuplicateKey
		}
		log.Err(err).Str("func", "*vaultRepository.Create").Str("table", r.spec.Table).Msg("error: scanning error")
		return empty, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetAllByUser returns every record owned by userID ordered by id. An empty
// result set yields an empty slice, not an error.
func (r *vaultRepository[T]) GetAllByUser(ctx context.Context, userID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllByUserQuery(r.spec, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetAllByUser").Str("table", r.spec.Table).Msg("error: building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.GetAllByUser").
			Str("table", r.spec.Table).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := r.spec.Scan(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.GetAllByUser").Str("table", r.spec.Table).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetAllByUser").Str("table", r.spec.Table).Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

// GetByID fetches one record by its global id. [ErrRecordNotFound] when the
// id does not exist.
func (r *vaultRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	log := logger.FromContext(ctx)
	var empty T

	query, args, err := buildSelectByIDQuery(r.spec, id)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetByID").Str("table", r.spec.Table).Msg("error: building query")
		return empty, err
	}

	record, err := r.spec.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetByID").Str("table", r.spec.Table).Msg("error: scanning error")
		return empty, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// GetByUserAndKey fetches the record owned by userID whose unique-key column
// equals key. Used as the create-time duplicate probe. [ErrRecordNotFound]
// when no such record exists.
func (r *vaultRepository[T]) GetByUserAndKey(ctx context.Context, userID int64, key string) (T, error) {
	log := logger.FromContext(ctx)
	var empty T

	query, args, err := buildSelectByUserAndKeyQuery(r.spec, userID, key)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetByUserAndKey").Str("table", r.spec.Table).Msg("error: building query")
		return empty, err
	}

	record, err := r.spec.Scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetByUserAndKey").Str("table", r.spec.Table).Msg("error: scanning error")
		return empty, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// Update overwrites the client-supplied columns of the record with the given
// id. The owner column is never touched. [ErrRecordNotFound] when the id
// matched no rows.
func (r *vaultRepository[T]) Update(ctx context.Context, id int64, record T) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(r.spec, id, record)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Str("table", r.spec.Table).Msg("error: building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.Update").
			Str("table", r.spec.Table).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete removes the record with the given id. [ErrRecordNotFound] when the
// id matched no rows.
func (r *vaultRepository[T]) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.spec, id)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Str("table", r.spec.Table).Msg("error: building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*vaultRepository.Delete").
			Str("table", r.spec.Table).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
