package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

// Kind describes one vault record kind to the generic resource service:
// how to name it in client-facing messages, how to read its unique key and
// owner, and which fields are secret. The four descriptors live in kinds.go.
type Kind[T any] struct {
	// Name is the capitalized display name used in error messages
	// ("Credential doesn't exist").
	Name string

	// KeyField is the display name of the per-owner unique key ("title",
	// "nickname").
	KeyField string

	// Key returns the record's unique-key value.
	Key func(record T) string

	// Owner returns the record's owner id.
	Owner func(record T) int64

	// SetOwner stamps the owner id onto a record before persistence.
	SetOwner func(record *T, ownerID int64)

	// Encrypt replaces the record's secret fields with ciphertext.
	// A no-op for kinds without secrets (notes).
	Encrypt func(record *T, cipher crypto.Cipher) error

	// Decrypt reverses Encrypt on a record loaded from storage.
	Decrypt func(record *T, cipher crypto.Cipher) error
}

// resourceService is the concrete implementation of [ResourceService]: one
// uniform access policy instantiated once per record kind.
//
// Two deliberate semantics worth knowing:
//   - GetByID/Update/Delete check existence BEFORE ownership, so a caller
//     can learn that a foreign id exists (404 vs 403) but nothing more.
//   - Update does not re-check key uniqueness; only Create does.
type resourceService[T any] struct {
	kind       Kind[T]
	repository store.VaultRepository[T]
	cipher     crypto.Cipher
	logger     *logger.Logger
}

// NewResourceService constructs the access policy for one record kind.
func NewResourceService[T any](kind Kind[T], repository store.VaultRepository[T], cipher crypto.Cipher, logger *logger.Logger) ResourceService[T] {
	return &resourceService[T]{
		kind:       kind,
		repository: repository,
		cipher:     cipher,
		logger:     logger,
	}
}

func (s *resourceService[T]) conflictError() *Error {
	return NewError(KindConflict, fmt.Sprintf("%s with this %s already exists", s.kind.Name, s.kind.KeyField))
}

func (s *resourceService[T]) notFoundError() *Error {
	return NewError(KindNotFound, fmt.Sprintf("%s doesn't exist", s.kind.Name))
}

// Create stores a new record for ownerID. The unique key is probed first so
// the common duplicate case gets a clean conflict; the per-owner unique
// index backstops concurrent creates with the same result. Secret fields
// are encrypted before the record leaves this method.
func (s *resourceService[T]) Create(ctx context.Context, ownerID int64, record T) error {
	log := logger.FromContext(ctx)

	_, err := s.repository.GetByUserAndKey(ctx, ownerID, s.kind.Key(record))
	if err == nil {
		return s.conflictError()
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).Str("kind", s.kind.Name).Msg("duplicate key probe failed")
		return fmt.Errorf("duplicate key probe failed: %w", err)
	}

	s.kind.SetOwner(&record, ownerID)
	if err := s.kind.Encrypt(&record, s.cipher); err != nil {
		log.Err(err).Str("kind", s.kind.Name).Msg("record encryption failed")
		return fmt.Errorf("record encryption failed: %w", err)
	}

	if _, err := s.repository.Create(ctx, record); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return s.conflictError()
		}
		log.Err(err).Str("kind", s.kind.Name).Msg("record creation ended with error")
		return fmt.Errorf("record creation ended with error: %w", err)
	}

	return nil
}

// ListByOwner returns every record owned by ownerID with secret fields
// decrypted. Zero records is a successful empty list, not an error.
func (s *resourceService[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	log := logger.FromContext(ctx)

	records, err := s.repository.GetAllByUser(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("kind", s.kind.Name).Msg("record listing ended with error")
		return nil, fmt.Errorf("record listing ended with error: %w", err)
	}

	for i := range records {
		if err := s.kind.Decrypt(&records[i], s.cipher); err != nil {
			log.Err(err).Str("kind", s.kind.Name).Msg("record decryption failed")
			return nil, fmt.Errorf("record decryption failed: %w", err)
		}
	}

	return records, nil
}

// GetByID returns the record with the given id, decrypted, provided it is
// owned by ownerID.
func (s *resourceService[T]) GetByID(ctx context.Context, ownerID, recordID int64) (T, error) {
	var empty T

	record, err := s.fetchOwned(ctx, ownerID, recordID)
	if err != nil {
		return empty, err
	}

	if err := s.kind.Decrypt(&record, s.cipher); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", s.kind.Name).Msg("record decryption failed")
		return empty, fmt.Errorf("record decryption failed: %w", err)
	}

	return record, nil
}

// Update overwrites the record with the given id, re-encrypting secret
// fields, provided it is owned by ownerID. Key uniqueness is NOT re-checked.
func (s *resourceService[T]) Update(ctx context.Context, ownerID, recordID int64, record T) error {
	log := logger.FromContext(ctx)

	if _, err := s.fetchOwned(ctx, ownerID, recordID); err != nil {
		return err
	}

	if err := s.kind.Encrypt(&record, s.cipher); err != nil {
		log.Err(err).Str("kind", s.kind.Name).Msg("record encryption failed")
		return fmt.Errorf("record encryption failed: %w", err)
	}

	if err := s.repository.Update(ctx, recordID, record); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return s.notFoundError()
		}
		log.Err(err).Str("kind", s.kind.Name).Msg("record update ended with error")
		return fmt.Errorf("record update ended with error: %w", err)
	}

	return nil
}

// Delete removes the record with the given id, provided it is owned by
// ownerID.
func (s *resourceService[T]) Delete(ctx context.Context, ownerID, recordID int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.fetchOwned(ctx, ownerID, recordID); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, recordID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return s.notFoundError()
		}
		log.Err(err).Str("kind", s.kind.Name).Msg("record deletion ended with error")
		return fmt.Errorf("record deletion ended with error: %w", err)
	}

	return nil
}

// fetchOwned loads a record by id and gates it on ownership. The existence
// check comes first: an absent id is a not-found regardless of the caller,
// a present id owned by someone else is forbidden.
func (s *resourceService[T]) fetchOwned(ctx context.Context, ownerID, recordID int64) (T, error) {
	log := logger.FromContext(ctx)
	var empty T

	record, err := s.repository.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return empty, s.notFoundError()
		}
		log.Err(err).Str("kind", s.kind.Name).Int64("id", recordID).Msg("record fetch ended with error")
		return empty, fmt.Errorf("record fetch ended with error: %w", err)
	}

	if s.kind.Owner(record) != ownerID {
		return empty, ErrPermissionDenied
	}

	return record, nil
}
