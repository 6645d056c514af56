// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-family-vault/models"
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	// random is the source of salts and IVs.
	random io.Reader
}

// NewVaultCipher constructs a [VaultCipher] backed by AES-256-GCM with keys
// from [DeriveKey] and randomness from the OS CSPRNG.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{random: rand.Reader}
}

// Encrypt implements [VaultCipher]. A new salt and IV are drawn for every
// call, so encrypting the same plaintext twice under the same password
// yields unrelated envelopes.
func (c *vaultCipher) Encrypt(plaintext, password []byte) (models.Envelope, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generate iv: %w", err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("derive key: %w", err)
	}
	defer Wipe(key)

	ciphertext, err := seal(key, iv, plaintext)
	if err != nil {
		return models.Envelope{}, err
	}

	return models.Envelope{
		EncryptedData: BufferToBase64(ciphertext),
		Salt:          BufferToBase64(salt),
		IV:            BufferToBase64(iv),
	}, nil
}

// Decrypt implements [VaultCipher]. Undecodable fields, wrong salt or IV
// lengths and a failed authentication tag all collapse into
// ErrIntegrityOrKey so that no caller can distinguish a wrong password from
// damaged data.
func (c *vaultCipher) Decrypt(envelope models.Envelope, password []byte) (*Secret, error) {
	ciphertext, err := Base64ToBuffer(envelope.EncryptedData)
	if err != nil {
		return nil, ErrIntegrityOrKey
	}
	salt, err := Base64ToBuffer(envelope.Salt)
	if err != nil || len(salt) != SaltSize {
		return nil, ErrIntegrityOrKey
	}
	iv, err := Base64ToBuffer(envelope.IV)
	if err != nil || len(iv) != IVSize {
		return nil, ErrIntegrityOrKey
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, ErrIntegrityOrKey
	}
	defer Wipe(key)

	plaintext, err := open(key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	defer Wipe(plaintext)

	return NewSecret(plaintext), nil
}

// Encrypt seals plaintext under password and returns the envelope.
func Encrypt(plaintext, password string) (models.Envelope, error) {
	return NewVaultCipher().Encrypt([]byte(plaintext), []byte(password))
}

// Decrypt opens the envelope described by its three base64 fields.
func Decrypt(encryptedData, password, salt, iv string) (string, error) {
	secret, err := NewVaultCipher().Decrypt(models.Envelope{
		EncryptedData: encryptedData,
		Salt:          salt,
		IV:            iv,
	}, []byte(password))
	if err != nil {
		return "", err
	}
	defer secret.Destroy()

	return secret.Expose(), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// seal returns ciphertext || tag.
func seal(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

func open(key, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, ErrIntegrityOrKey
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrIntegrityOrKey
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrityOrKey
	}

	return plaintext, nil
}
