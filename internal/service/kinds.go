package service

import (
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

// Kind descriptors for the four vault record kinds. Secret-field sets per
// kind: credentials and wifi networks encrypt the password, cards encrypt
// password and cvv, notes hold no secrets at all.

// CredentialKind describes [models.Credential].
var CredentialKind = Kind[models.Credential]{
	Name:     "Credential",
	KeyField: "title",
	Key:      func(c models.Credential) string { return c.Title },
	Owner:    func(c models.Credential) int64 { return c.UserID },
	SetOwner: func(c *models.Credential, ownerID int64) { c.UserID = ownerID },
	Encrypt: func(c *models.Credential, cipher crypto.Cipher) error {
		encrypted, err := cipher.Encrypt(c.Password)
		if err != nil {
			return err
		}
		c.Password = encrypted
		return nil
	},
	Decrypt: func(c *models.Credential, cipher crypto.Cipher) error {
		decrypted, err := cipher.Decrypt(c.Password)
		if err != nil {
			return err
		}
		c.Password = decrypted
		return nil
	},
}

// CardKind describes [models.Card].
var CardKind = Kind[models.Card]{
	Name:     "Card",
	KeyField: "nickname",
	Key:      func(c models.Card) string { return c.Nickname },
	Owner:    func(c models.Card) int64 { return c.UserID },
	SetOwner: func(c *models.Card, ownerID int64) { c.UserID = ownerID },
	Encrypt: func(c *models.Card, cipher crypto.Cipher) error {
		encryptedPassword, err := cipher.Encrypt(c.Password)
		if err != nil {
			return err
		}
		encryptedCVV, err := cipher.Encrypt(c.CVV)
		if err != nil {
			return err
		}
		c.Password, c.CVV = encryptedPassword, encryptedCVV
		return nil
	},
	Decrypt: func(c *models.Card, cipher crypto.Cipher) error {
		decryptedPassword, err := cipher.Decrypt(c.Password)
		if err != nil {
			return err
		}
		decryptedCVV, err := cipher.Decrypt(c.CVV)
		if err != nil {
			return err
		}
		c.Password, c.CVV = decryptedPassword, decryptedCVV
		return nil
	},
}

// NoteKind describes [models.Note]. Notes carry no secret fields, so the
// encrypt/decrypt hooks are no-ops.
var NoteKind = Kind[models.Note]{
	Name:     "Note",
	KeyField: "title",
	Key:      func(n models.Note) string { return n.Title },
	Owner:    func(n models.Note) int64 { return n.UserID },
	SetOwner: func(n *models.Note, ownerID int64) { n.UserID = ownerID },
	Encrypt:  func(*models.Note, crypto.Cipher) error { return nil },
	Decrypt:  func(*models.Note, crypto.Cipher) error { return nil },
}

// WifiNetworkKind describes [models.WifiNetwork].
var WifiNetworkKind = Kind[models.WifiNetwork]{
	Name:     "Wifi",
	KeyField: "title",
	Key:      func(w models.WifiNetwork) string { return w.Title },
	Owner:    func(w models.WifiNetwork) int64 { return w.UserID },
	SetOwner: func(w *models.WifiNetwork, ownerID int64) { w.UserID = ownerID },
	Encrypt: func(w *models.WifiNetwork, cipher crypto.Cipher) error {
		encrypted, err := cipher.Encrypt(w.Password)
		if err != nil {
			return err
		}
		w.Password = encrypted
		return nil
	},
	Decrypt: func(w *models.WifiNetwork, cipher crypto.Cipher) error {
		decrypted, err := cipher.Decrypt(w.Password)
		if err != nil {
			return err
		}
		w.Password = decrypted
		return nil
	},
}
