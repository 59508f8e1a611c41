package store

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository is the storage contract shared by all vault record kinds.
// The type parameter is one of the vault models (Credential, Card, Note,
// WifiNetwork); one instantiation exists per kind, each bound to its own
// table via a [TableSpec].
//
// Ownership checks are NOT performed here: GetByID fetches by global id and
// the service layer compares owners. GetByUserAndKey exists for the
// create-time uniqueness probe.
type VaultRepository[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	GetAllByUser(ctx context.Context, userID int64) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	GetByUserAndKey(ctx context.Context, userID int64, key string) (T, error)
	Update(ctx context.Context, id int64, record T) error
	Delete(ctx context.Context, id int64) error
}
