package service

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// AuthService handles account registration and token issuance.
type AuthService interface {
	// Register creates a new account from a raw email/password pair.
	Register(ctx context.Context, email, rawPassword string) error

	// Login verifies credentials and issues a signed bearer token.
	Login(ctx context.Context, email, rawPassword string) (models.Token, error)

	// ParseToken verifies a bearer token string and returns the token with
	// the embedded user id.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResourceService is the uniform access policy shared by all vault record
// kinds. Every method takes the authenticated owner id; records belonging to
// other users are never returned or modified.
type ResourceService[T any] interface {
	Create(ctx context.Context, ownerID int64, record T) error
	ListByOwner(ctx context.Context, ownerID int64) ([]T, error)
	GetByID(ctx context.Context, ownerID, recordID int64) (T, error)
	Update(ctx context.Context, ownerID, recordID int64, record T) error
	Delete(ctx context.Context, ownerID, recordID int64) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
