package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestSecret_CopiesInput(t *testing.T) {
	src := []byte("hunter2")
	s := NewSecret(src)
	defer s.Destroy()

	src[0] = 'X'
	if s.Expose() != "hunter2" {
		t.Fatalf("secret aliased caller buffer: %q", s.Expose())
	}
}

func TestSecret_DestroyZeroesBacking(t *testing.T) {
	s := NewSecretString("correct-horse")
	backing := s.Bytes()

	s.Destroy()

	if !bytes.Equal(backing, make([]byte, len("correct-horse"))) {
		t.Fatalf("backing memory not zeroed: %x", backing)
	}
	if !s.Destroyed() {
		t.Fatalf("Destroyed() = false after Destroy")
	}

	// Idempotent.
	s.Destroy()

	if _, err := s.Clone(); !errors.Is(err, ErrSecretDestroyed) {
		t.Fatalf("Clone after Destroy: err = %v, want ErrSecretDestroyed", err)
	}
}

func TestSecret_CloneIsIndependent(t *testing.T) {
	s := NewSecretString("correct-horse")
	c, err := s.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	s.Destroy()

	if c.Expose() != "correct-horse" {
		t.Fatalf("clone affected by original Destroy: %q", c.Expose())
	}
	c.Destroy()
}

func TestSecret_FormatsRedacted(t *testing.T) {
	s := NewSecretString("correct-horse")
	defer s.Destroy()

	for _, out := range []string{fmt.Sprint(s), fmt.Sprintf("%v", s), fmt.Sprintf("%#v", s), s.String()} {
		if out != redacted {
			t.Fatalf("formatted secret = %q, want %q", out, redacted)
		}
	}
}

func TestSecret_NilDestroy(t *testing.T) {
	var s *Secret
	s.Destroy()
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Wipe(b)
	if !bytes.Equal(b, []byte{0, 0, 0, 0}) {
		t.Fatalf("Wipe left %x", b)
	}
}
