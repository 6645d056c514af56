package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SessionFile persists the account token between CLI invocations. The
// master password is never written to it.
type SessionFile struct {
	path string
}

type sessionData struct {
	Token string `json:"token"`
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Path returns the location of the file.
func (f *SessionFile) Path() string {
	return f.path
}

// Load returns the saved token or [ErrNoSession].
func (f *SessionFile) Load() (string, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	var data sessionData
	if err = json.Unmarshal(b, &data); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	if strings.TrimSpace(data.Token) == "" {
		return "", ErrNoSession
	}

	return data.Token, nil
}

// Save writes the token readable by the current user only.
func (f *SessionFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	b, err := json.Marshal(sessionData{Token: token})
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the file. A missing file is not an error.
func (f *SessionFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
