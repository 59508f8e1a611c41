package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/internal/validators"
	"github.com/MKhiriev/go-secret-vault/models"
)

// ---- Shared test doubles ----

type mockAuthService struct {
	registerFn   func(ctx context.Context, email, rawPassword string) error
	loginFn      func(ctx context.Context, email, rawPassword string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, rawPassword string) error {
	return m.registerFn(ctx, email, rawPassword)
}

func (m *mockAuthService) Login(ctx context.Context, email, rawPassword string) (models.Token, error) {
	return m.loginFn(ctx, email, rawPassword)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockResourceService[T any] struct {
	createFn      func(ctx context.Context, ownerID int64, record T) error
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]T, error)
	getByIDFn     func(ctx context.Context, ownerID, recordID int64) (T, error)
	updateFn      func(ctx context.Context, ownerID, recordID int64, record T) error
	deleteFn      func(ctx context.Context, ownerID, recordID int64) error
}

func (m *mockResourceService[T]) Create(ctx context.Context, ownerID int64, record T) error {
	return m.createFn(ctx, ownerID, record)
}

func (m *mockResourceService[T]) ListByOwner(ctx context.Context, ownerID int64) ([]T, error) {
	return m.listByOwnerFn(ctx, ownerID)
}

func (m *mockResourceService[T]) GetByID(ctx context.Context, ownerID, recordID int64) (T, error) {
	return m.getByIDFn(ctx, ownerID, recordID)
}

func (m *mockResourceService[T]) Update(ctx context.Context, ownerID, recordID int64, record T) error {
	return m.updateFn(ctx, ownerID, recordID, record)
}

func (m *mockResourceService[T]) Delete(ctx context.Context, ownerID, recordID int64) error {
	return m.deleteFn(ctx, ownerID, recordID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:   services,
		validators: validators.NewValidators(),
		logger:     logger.Nop(),
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
