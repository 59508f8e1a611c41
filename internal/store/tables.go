package store

import "github.com/MKhiriev/go-secret-vault/models"

// Table bindings for the four vault record kinds. Everything the generic
// repository needs to know about a kind lives here.

// CredentialsTable binds [models.Credential] to the credentials table.
var CredentialsTable = TableSpec[models.Credential]{
	Table:         "credentials",
	KeyColumn:     "title",
	InsertColumns: []string{"user_id", "title", "url", "username", "password"},
	SelectColumns: []string{"id", "user_id", "title", "url", "username", "password", "created_at"},
	Values: func(c models.Credential) []any {
		return []any{c.UserID, c.Title, c.URL, c.Username, c.Password}
	},
	Scan: func(row rowScanner) (models.Credential, error) {
		var c models.Credential
		err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.URL, &c.Username, &c.Password, &c.CreatedAt)
		return c, err
	},
}

// CardsTable binds [models.Card] to the cards table.
var CardsTable = TableSpec[models.Card]{
	Table:     "cards",
	KeyColumn: "nickname",
	InsertColumns: []string{
		"user_id", "nickname", "printed_name", "number", "cvv",
		"expiration_date", "password", "virtual", "type",
	},
	SelectColumns: []string{
		"id", "user_id", "nickname", "printed_name", "number", "cvv",
		"expiration_date", "password", "virtual", "type", "created_at",
	},
	Values: func(c models.Card) []any {
		return []any{c.UserID, c.Nickname, c.PrintedName, c.Number, c.CVV, c.ExpirationDate, c.Password, c.Virtual, c.Type}
	},
	Scan: func(row rowScanner) (models.Card, error) {
		var c models.Card
		err := row.Scan(&c.ID, &c.UserID, &c.Nickname, &c.PrintedName, &c.Number, &c.CVV,
			&c.ExpirationDate, &c.Password, &c.Virtual, &c.Type, &c.CreatedAt)
		return c, err
	},
}

// NotesTable binds [models.Note] to the notes table.
var NotesTable = TableSpec[models.Note]{
	Table:         "notes",
	KeyColumn:     "title",
	InsertColumns: []string{"user_id", "title", "text"},
	SelectColumns: []string{"id", "user_id", "title", "text", "created_at"},
	Values: func(n models.Note) []any {
		return []any{n.UserID, n.Title, n.Text}
	},
	Scan: func(row rowScanner) (models.Note, error) {
		var n models.Note
		err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Text, &n.CreatedAt)
		return n, err
	},
}

// WifiNetworksTable binds [models.WifiNetwork] to the wifi_networks table.
var WifiNetworksTable = TableSpec[models.WifiNetwork]{
	Table:         "wifi_networks",
	KeyColumn:     "title",
	InsertColumns: []string{"user_id", "title", "wifi_name", "password"},
	SelectColumns: []string{"id", "user_id", "title", "wifi_name", "password", "created_at"},
	Values: func(w models.WifiNetwork) []any {
		return []any{w.UserID, w.Title, w.WifiName, w.Password}
	},
	Scan: func(row rowScanner) (models.WifiNetwork, error) {
		var w models.WifiNetwork
		err := row.Scan(&w.ID, &w.UserID, &w.Title, &w.WifiName, &w.Password, &w.CreatedAt)
		return w, err
	},
}
