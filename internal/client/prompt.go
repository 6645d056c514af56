package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/MKhiriev/go-family-vault/internal/crypto"
)

// Prompter asks the user for input.
type Prompter interface {
	// ReadLine returns one trimmed line. io.EOF means the input is closed.
	ReadLine(prompt string) (string, error)

	// ReadSecret reads without echo when attached to a terminal. The caller
	// owns the returned bytes and should wipe them.
	ReadSecret(prompt string) ([]byte, error)
}

// terminalPrompter reads from in and writes prompts to out. When in is a
// terminal, secrets are read with echo disabled.
type terminalPrompter struct {
	in     *bufio.Reader
	fd     int
	isTerm bool
	out    io.Writer
}

// NewPrompter returns a [Prompter] over in. Echo is only disabled when in
// is an *os.File attached to a terminal.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	p := &terminalPrompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.isTerm = true
	}
	return p
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) ReadSecret(prompt string) ([]byte, error) {
	fmt.Fprint(p.out, prompt)

	if p.isTerm {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return nil, fmt.Errorf("read secret: %w", err)
		}
		return b, nil
	}

	line, err := p.in.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}

	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	secret := make([]byte, n)
	copy(secret, line[:n])
	crypto.Wipe(line)

	return secret, nil
}

// readConfirmedSecret asks twice and fails unless both answers match.
func readConfirmedSecret(p Prompter, prompt, confirm string) ([]byte, error) {
	first, err := p.ReadSecret(prompt)
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, ErrEmptyInput
	}

	second, err := p.ReadSecret(confirm)
	if err != nil {
		crypto.Wipe(first)
		return nil, err
	}
	defer crypto.Wipe(second)

	if string(first) != string(second) {
		crypto.Wipe(first)
		return nil, ErrPasswordMismatch
	}

	return first, nil
}
