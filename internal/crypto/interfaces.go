// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side half of the zero-knowledge vault:
// password-based key derivation, authenticated encryption of secrets into
// ciphertext envelopes, and a wrapper that keeps sensitive bytes out of
// ordinary garbage-collected memory for as short a time as possible.
//
// Scheme (per secret):
//
//	salt = 16 random bytes, iv = 12 random bytes      (fresh on every Encrypt)
//	key  = PBKDF2-HMAC-SHA256(password, salt, 100000)  (32 bytes)
//	ct   = AES-256-GCM(key, iv, plaintext)             (ciphertext || tag)
//	envelope = {"encryptedData": b64(ct), "salt": b64(salt), "iv": b64(iv)}
//
// Nothing here talks to the network or the store.
package crypto

import "github.com/MKhiriev/go-family-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher seals plaintext secrets into envelopes and opens them again.
//
// Passwords are taken as byte slices so callers can hand in the contents of
// a [Secret] without an intermediate string copy. The returned plaintext of
// Decrypt is itself a [Secret]; the caller owns it and must Destroy it.
type VaultCipher interface {
	// Encrypt derives a key from password and a fresh salt and seals
	// plaintext under a fresh IV.
	Encrypt(plaintext, password []byte) (models.Envelope, error)

	// Decrypt re-derives the key from password and the envelope's salt and
	// opens the ciphertext. Every failure is reported as ErrIntegrityOrKey.
	Decrypt(envelope models.Envelope, password []byte) (*Secret, error)
}
