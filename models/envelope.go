// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEnvelope is returned when a persisted or transmitted envelope
// is not the three-field JSON object produced by the vault cipher.
var ErrMalformedEnvelope = errors.New("malformed ciphertext envelope")

// Envelope is the self-describing ciphertext of one vault secret.
//
// All three fields are standard (padded) base64. Salt decodes to 16 bytes and
// IV to 12 bytes; neither is secret. The canonical persisted form is the JSON
// object {"encryptedData","salt","iv"} serialized to text and stored verbatim
// in the item's encrypted column.
type Envelope struct {
	EncryptedData string
	Salt          string
	IV            string
}

// envelopeWire fixes the key names and order of the persisted JSON object.
type envelopeWire struct {
	EncryptedData string `json:"encryptedData"`
	Salt          string `json:"salt"`
	IV            string `json:"iv"`
}

// Encode returns the canonical JSON text of the envelope.
func (e Envelope) Encode() (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	b, err := json.Marshal(envelopeWire(e))
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}

	return string(b), nil
}

// ParseEnvelope parses the canonical JSON text back into an Envelope.
func ParseEnvelope(s string) (Envelope, error) {
	var w envelopeWire
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	e := Envelope(w)
	if err := e.Validate(); err != nil {
		return Envelope{}, err
	}

	return e, nil
}

// Validate checks the structural shape only. Byte lengths and base64
// validity are checked by the cipher, which reports them the same way as a
// failed authentication tag.
func (e Envelope) Validate() error {
	switch {
	case e.EncryptedData == "":
		return fmt.Errorf("%w: encryptedData is empty", ErrMalformedEnvelope)
	case e.Salt == "":
		return fmt.Errorf("%w: salt is empty", ErrMalformedEnvelope)
	case e.IV == "":
		return fmt.Errorf("%w: iv is empty", ErrMalformedEnvelope)
	}

	return nil
}

// IsZero reports whether no field is set.
func (e Envelope) IsZero() bool {
	return e == Envelope{}
}

// MarshalJSON carries the envelope as a JSON string holding its canonical text.
func (e Envelope) MarshalJSON() ([]byte, error) {
	s, err := e.Encode()
	if err != nil {
		return nil, err
	}

	return json.Marshal(s)
}

// UnmarshalJSON accepts the JSON string form produced by MarshalJSON.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	parsed, err := ParseEnvelope(s)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}

// Value implements driver.Valuer.
func (e Envelope) Value() (driver.Value, error) {
	return e.Encode()
}

// Scan implements sql.Scanner.
func (e *Envelope) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		return fmt.Errorf("%w: NULL column", ErrMalformedEnvelope)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrMalformedEnvelope, src)
	}

	parsed, err := ParseEnvelope(s)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}
