// Package crypto implements the two cryptographic primitives the vault
// relies on: an irreversible hash for account passwords and a reversible
// symmetric cipher for vault secret fields.
//
// The two transforms are deliberately kept behind small interfaces so that
// services depend on the capability, not the algorithm.
package crypto

// Cipher is a reversible symmetric transform for vault secret fields
// (credential passwords, card passwords and CVVs, wifi passwords).
//
// Decrypt(Encrypt(x)) == x must hold for every input string.
type Cipher interface {
	// Encrypt returns the ciphertext for plaintext, encoded so it can be
	// stored in a text column.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It fails if the ciphertext was produced
	// with a different key or has been tampered with.
	Decrypt(ciphertext string) (string, error)
}

// PasswordHasher is a one-way transform for account passwords. Hashes are
// never decrypted; authentication compares a candidate password against the
// stored hash.
type PasswordHasher interface {
	// Hash derives an irreversible hash from the raw password.
	Hash(password string) (string, error)

	// Compare reports whether password matches the previously stored hash.
	Compare(hashedPassword, password string) bool
}
