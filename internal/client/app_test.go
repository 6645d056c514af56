package client

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/crypto"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/vault"
	"github.com/MKhiriev/go-family-vault/models"
)

type testClient struct {
	app       *App
	server    *fakeServer
	prompter  *scriptedPrompter
	clipboard *fakeClipboard
	out       *bytes.Buffer
	session   string
}

func newTestClient(t *testing.T, backend *fakeBackend, sessionPath string) *testClient {
	t.Helper()

	c := &testClient{
		server:    newFakeServer(backend),
		prompter:  &scriptedPrompter{},
		clipboard: &fakeClipboard{},
		out:       &bytes.Buffer{},
		session:   sessionPath,
	}
	c.app = NewApp(models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc"),
		WithConfig(&config.ClientConfig{SessionFile: sessionPath}),
		WithServerAdapter(c.server),
		WithSessionFile(NewSessionFile(sessionPath)),
		WithPrompter(c.prompter),
		WithClipboard(c.clipboard),
		WithOutput(c.out),
		WithLogger(logger.Nop()),
	)
	return c
}

// run executes one command line and returns its output.
func (c *testClient) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c.out.Reset()
	err := c.app.Run(context.Background(), args)
	return c.out.String(), err
}

func registered(t *testing.T, backend *fakeBackend, login string) *testClient {
	t.Helper()
	c := newTestClient(t, backend, filepath.Join(t.TempDir(), "session.json"))
	c.prompter.push("account-pw", "account-pw")

	out, err := c.run(t, "register", "--login", login, "--name", login)
	require.NoError(t, err)
	require.Contains(t, out, "Registered and logged in as "+login)
	return c
}

func TestApp_FamilySecretLifecycle(t *testing.T) {
	backend := newFakeBackend()
	alice := registered(t, backend, "alice")
	bob := registered(t, backend, "bob")
	aliceID := alice.server.Token()[len("token-"):]
	bobID := bob.server.Token()[len("token-"):]

	out, err := alice.run(t, "family", "create", "Smiths")
	require.NoError(t, err)
	assert.Contains(t, out, "Family id: fam-3")

	_, err = bob.run(t, "family", "join", "fam-3")
	require.NoError(t, err)

	out, err = bob.run(t, "family", "members")
	require.NoError(t, err)
	assert.Contains(t, out, aliceID)
	assert.Contains(t, out, "bob (you)")

	alice.prompter.push("master", "hunter2")
	out, err = alice.run(t, "vault", "save", "home", "wifi")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved "home wifi" (id item-4)`)

	stored := backend.items["item-4"]
	assert.NotContains(t, stored.Envelope.EncryptedData, "hunter2")

	out, err = alice.run(t, "vault", "share", "item-4", bobID)
	require.NoError(t, err)
	assert.Contains(t, out, "shared with 1 member(s)")

	out, err = alice.run(t, "vault", "shares", "item-4")
	require.NoError(t, err)
	assert.Equal(t, bobID+"\n", out)

	out, err = bob.run(t, "vault", "list", "--shared")
	require.NoError(t, err)
	assert.Contains(t, out, "home wifi")
	assert.Contains(t, out, aliceID)

	bob.prompter.push("master")
	out, err = bob.run(t, "vault", "reveal", "item-4")
	require.NoError(t, err)
	assert.Equal(t, "home wifi: hunter2\n", out)

	bob.prompter.push("wrong")
	_, err = bob.run(t, "vault", "reveal", "item-4")
	assert.ErrorIs(t, err, crypto.ErrIntegrityOrKey)

	_, err = bob.run(t, "vault", "delete", "item-4")
	assert.ErrorIs(t, err, vault.ErrAuthorization)

	out, err = alice.run(t, "vault", "delete", "item-4")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "home wifi"`)
	assert.Empty(t, backend.grants["item-4"])
	assert.NotContains(t, backend.items, "item-4")
}

func TestApp_SaveWithoutFamily(t *testing.T) {
	c := registered(t, newFakeBackend(), "carol")
	c.prompter.push("master", "secret")

	_, err := c.run(t, "vault", "save", "wifi")
	assert.ErrorIs(t, err, vault.ErrNoFamily)
}

func TestApp_RevealToClipboard(t *testing.T) {
	backend := newFakeBackend()
	c := registered(t, backend, "alice")
	_, err := c.run(t, "family", "create", "Smiths")
	require.NoError(t, err)

	c.prompter.push("master", "hunter2")
	_, err = c.run(t, "vault", "save", "wifi")
	require.NoError(t, err)

	c.prompter.push("master")
	out, err := c.run(t, "vault", "reveal", "item-3", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Copied")
	assert.NotContains(t, out, "hunter2")
	assert.Equal(t, "hunter2", c.clipboard.text)
}

func TestApp_ShareUnknownItem(t *testing.T) {
	c := registered(t, newFakeBackend(), "alice")

	_, err := c.run(t, "vault", "share", "item-404", "user-2")
	assert.ErrorIs(t, err, vault.ErrItemNotFound)
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	backend := newFakeBackend()
	first := registered(t, backend, "alice")

	second := newTestClient(t, backend, first.session)
	out, err := second.run(t, "vault", "list")
	require.NoError(t, err)
	assert.Equal(t, "No secrets\n", out)
	assert.Equal(t, first.server.Token(), second.server.Token())
}

func TestApp_Logout(t *testing.T) {
	c := registered(t, newFakeBackend(), "alice")

	out, err := c.run(t, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)
	assert.Empty(t, c.server.Token())

	_, err = NewSessionFile(c.session).Load()
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.run(t, "vault", "list")
	assert.ErrorIs(t, err, vault.ErrAuthorization)
}

func TestApp_LoginFailure(t *testing.T) {
	backend := newFakeBackend()
	registered(t, backend, "alice")

	c := newTestClient(t, backend, filepath.Join(t.TempDir(), "session.json"))
	c.prompter.push("not-the-password")
	_, err := c.run(t, "login", "--login", "alice")
	require.Error(t, err)
	assert.Equal(t, "Login failed or session expired: run `family-vault login`", HumanizeError(err))

	c.prompter.push("account-pw")
	out, err := c.run(t, "login", "--login", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as alice")
}

func TestApp_RegisterPasswordMismatch(t *testing.T) {
	c := newTestClient(t, newFakeBackend(), filepath.Join(t.TempDir(), "session.json"))
	c.prompter.push("one", "two")

	_, err := c.run(t, "register", "--login", "alice", "--name", "Alice")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, c.server.Token())
}

func TestApp_Version(t *testing.T) {
	c := newTestClient(t, newFakeBackend(), filepath.Join(t.TempDir(), "session.json"))

	out, err := c.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Client: 1.0.0 (built 2026-10-01, commit abc)")
	assert.Contains(t, out, "Server: 9.9.9")
}

func TestApp_Shell(t *testing.T) {
	backend := newFakeBackend()
	c := registered(t, backend, "alice")
	_, err := c.run(t, "family", "create", "Smiths")
	require.NoError(t, err)

	c.prompter.lines = []string{
		"vault save wifi",
		"vault reveal item-3",
		"vault list",
		"vault reveal item-3",
		"vault reveal item-404",
		"",
		"exit",
		"vault list",
	}
	c.prompter.push("master", "hunter2")
	c.prompter.asked = nil

	out, err := c.run(t, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "wifi: hunter2")
	assert.Contains(t, out, "wifi (shown)")
	assert.Contains(t, out, "wifi: hidden")
	assert.Contains(t, out, "Error: Secret not found")

	masterPrompts := 0
	for _, p := range c.prompter.asked {
		if p == "Master password: " {
			masterPrompts++
		}
	}
	assert.Equal(t, 1, masterPrompts, "the shell keeps the vault unlocked")
	assert.Equal(t, []string{"vault list"}, c.prompter.lines, "nothing runs after exit")
	assert.Equal(t, vault.StateLocked, c.app.vault.State())
}
