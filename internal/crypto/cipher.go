// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// fieldCipher is the AES-256-GCM implementation of [Cipher].
//
// The 256-bit key is derived as SHA-256 of the configured secret, so
// deployments can use an arbitrary-length passphrase. The encrypted blob is
// nonce ‖ ciphertext, Base64 (standard encoding) so it fits a text column.
type fieldCipher struct {
	gcm cipher.AEAD
}

// NewFieldCipher constructs a [Cipher] keyed by secret. Returns an error if
// the underlying AES cipher cannot be initialised.
func NewFieldCipher(secret string) (Cipher, error) {
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &fieldCipher{gcm: gcm}, nil
}

// Encrypt implements [Cipher]. A fresh random nonce is generated per call,
// so encrypting the same plaintext twice yields different blobs.
// The nonce is prepended to the ciphertext so Decrypt can split it out.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher]. It Base64-decodes the blob, splits out the
// nonce, and decrypts the remainder. An authentication-tag mismatch (wrong
// key or corrupted data) surfaces as an error.
func (c *fieldCipher) Decrypt(encrypted string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := c.gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt data: %w", err)
	}

	return string(plaintext), nil
}
