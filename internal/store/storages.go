package store

import (
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// Storages bundles every repository the application uses.
type Storages struct {
	UserRepository UserRepository
	Credentials    VaultRepository[models.Credential]
	Cards          VaultRepository[models.Card]
	Notes          VaultRepository[models.Note]
	WifiNetworks   VaultRepository[models.WifiNetwork]
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Credentials:    NewVaultRepository(db, CredentialsTable, log),
		Cards:          NewVaultRepository(db, CardsTable, log),
		Notes:          NewVaultRepository(db, NotesTable, log),
		WifiNetworks:   NewVaultRepository(db, WifiNetworksTable, log),
	}
}
