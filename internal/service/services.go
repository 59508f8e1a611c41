package service

import (
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	AuthService  AuthService
	Credentials  ResourceService[models.Credential]
	Cards        ResourceService[models.Card]
	Notes        ResourceService[models.Note]
	WifiNetworks ResourceService[models.WifiNetwork]
	AppInfo      AppInfoService
}

// NewServices wires all services to the given storages and constructs the
// cryptographic primitives from configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewFieldCipher(cfg.App.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("field cipher init failed: %w", err)
	}
	hasher := crypto.NewPasswordHasher(cfg.App.BcryptCost)

	appInfo, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, hasher, cfg.App, log),
		Credentials:  NewResourceService(CredentialKind, storages.Credentials, cipher, log),
		Cards:        NewResourceService(CardKind, storages.Cards, cipher, log),
		Notes:        NewResourceService(NoteKind, storages.Notes, cipher, log),
		WifiNetworks: NewResourceService(WifiNetworkKind, storages.WifiNetworks, cipher, log),
		AppInfo:      appInfo,
	}, nil
}
