package crypto

import (
	"encoding/base64"
	"fmt"
)

// BufferToBase64 encodes b with standard padded base64.
func BufferToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64ToBuffer decodes standard padded base64. It is the exact inverse of
// BufferToBase64 for every byte sequence.
func Base64ToBuffer(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return b, nil
}
