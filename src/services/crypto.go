package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// Contact request columns sealed at rest
const (
	FieldContactPhone   = "contact.phone"
	FieldContactMessage = "contact.message"
)

// Encryptor seals individual contact request fields with AES-256-GCM.
// The field name is bound as associated data, so a phone ciphertext
// does not open as a message. A nil Encryptor stores plaintext.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor builds an Encryptor from ENCRYPTION_KEY (64 hex chars).
// An empty key disables encryption and returns nil.
func NewEncryptor(hexKey string) (*Encryptor, error) {
	if hexKey == "" {
		return nil, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid encryption key: must be 32 bytes (64 hex chars), got %d bytes", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &Encryptor{aead: aead}, nil
}

// SealField encrypts value for storage in field as nonce || ciphertext || tag
func (e *Encryptor) SealField(field, value string) ([]byte, error) {
	if e == nil {
		return []byte(value), nil
	}

	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce for %s: %w", field, err)
	}
	return e.aead.Seal(nonce, nonce, []byte(value), []byte(field)), nil
}

// OpenField decrypts a value sealed for field. Values that do not open
// (rows stored before a key was configured) are returned as stored.
func (e *Encryptor) OpenField(field string, stored []byte) string {
	if e == nil || len(stored) < e.aead.NonceSize()+e.aead.Overhead() {
		return string(stored)
	}

	n := e.aead.NonceSize()
	plaintext, err := e.aead.Open(nil, stored[:n], stored[n:], []byte(field))
	if err != nil {
		return string(stored)
	}
	return string(plaintext)
}
