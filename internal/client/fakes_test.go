package client

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-vault/internal/adapter"
	"github.com/MKhiriev/go-family-vault/models"
)

// fakeBackend is the shared state behind every fakeServer: an in-memory
// stand-in for the vault server with its visibility and ownership rules.
type fakeBackend struct {
	mu       sync.Mutex
	seq      int
	clock    time.Time
	users    map[string]fakeUser // by login
	profiles map[string]models.Profile
	items    map[string]models.VaultItem
	order    []string
	grants   map[string][]string
}

type fakeUser struct {
	id       string
	password string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    make(map[string]fakeUser),
		profiles: make(map[string]models.Profile),
		items:    make(map[string]models.VaultItem),
		grants:   make(map[string][]string),
	}
}

func (b *fakeBackend) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

// fakeServer is one client's connection to the backend.
type fakeServer struct {
	backend *fakeBackend

	mu    sync.Mutex
	token string
}

var _ adapter.ServerAdapter = (*fakeServer)(nil)

func newFakeServer(b *fakeBackend) *fakeServer {
	return &fakeServer{backend: b}
}

func (s *fakeServer) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *fakeServer) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeServer) caller() (string, error) {
	token := s.Token()
	if token == "" {
		return "", adapter.ErrNotLoggedIn
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func (s *fakeServer) CurrentUser(context.Context) (*models.Identity, error) {
	id, err := s.caller()
	if err != nil {
		return nil, nil
	}
	return &models.Identity{ID: id}, nil
}

func (s *fakeServer) Register(_ context.Context, user models.User) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.users[user.Login]; ok {
		return fmt.Errorf("%w: login already exists", adapter.ErrConflict)
	}
	id := b.nextID("user")
	b.users[user.Login] = fakeUser{id: id, password: user.Password}
	b.profiles[id] = models.Profile{UserID: id, FullName: user.FullName, Role: models.RoleMember}

	s.SetToken("token-" + id)
	return nil
}

func (s *fakeServer) Login(_ context.Context, user models.User) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	u, ok := b.users[user.Login]
	if !ok || u.password != user.Password {
		return fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized)
	}

	s.SetToken("token-" + u.id)
	return nil
}

func (s *fakeServer) GetProfile(context.Context) (models.Profile, error) {
	id, err := s.caller()
	if err != nil {
		return models.Profile{}, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profiles[id], nil
}

func (s *fakeServer) ListFamilyMembers(context.Context) ([]models.Profile, error) {
	id, err := s.caller()
	if err != nil {
		return nil, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	me := b.profiles[id]
	if !me.HasFamily() {
		return nil, fmt.Errorf("%w: no family found", adapter.ErrNotFound)
	}

	var out []models.Profile
	for _, p := range b.profiles {
		if p.HasFamily() && *p.FamilyID == *me.FamilyID {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(x, y models.Profile) int { return strings.Compare(x.UserID, y.UserID) })
	return out, nil
}

func (s *fakeServer) CreateFamily(_ context.Context, name string) (models.Family, error) {
	id, err := s.caller()
	if err != nil {
		return models.Family{}, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	familyID := b.nextID("fam")
	p := b.profiles[id]
	p.FamilyID = &familyID
	p.Role = models.RoleParent
	b.profiles[id] = p

	return models.Family{ID: familyID, Name: name}, nil
}

func (s *fakeServer) JoinFamily(_ context.Context, familyID string) error {
	id, err := s.caller()
	if err != nil {
		return err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.profiles[id]
	p.FamilyID = &familyID
	b.profiles[id] = p
	return nil
}

func (s *fakeServer) Version(context.Context) (models.AppBuildInfo, error) {
	return models.NewAppBuildInfo("9.9.9", "2026-10-01", "server"), nil
}

func (s *fakeServer) InsertItem(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	if _, err := s.caller(); err != nil {
		return models.VaultItem{}, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clock = b.clock.Add(time.Second)
	item.ID = b.nextID("item")
	item.CreatedAt = b.clock
	b.items[item.ID] = item
	b.order = append(b.order, item.ID)
	return item, nil
}

func (s *fakeServer) SelectItems(_ context.Context, q models.ItemQuery) ([]models.VaultItem, error) {
	caller, err := s.caller()
	if err != nil {
		return nil, err
	}

	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.VaultItem
	for i := len(b.order) - 1; i >= 0; i-- {
		item, ok := b.items[b.order[i]]
		if !ok {
			continue
		}
		visible := item.OwnerID == caller || slices.Contains(b.grants[item.ID], caller)
		switch {
		case q.ID != "" && (item.ID != q.ID || !visible):
		case q.OwnerID != "" && item.OwnerID != q.OwnerID:
		case q.SharedWith != "" && !slices.Contains(b.grants[item.ID], q.SharedWith):
		default:
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeServer) DeleteItem(_ context.Context, itemID string) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.grants[itemID]) > 0 {
		return fmt.Errorf("%w: vault item is still shared", adapter.ErrConflict)
	}
	delete(b.items, itemID)
	return nil
}

func (s *fakeServer) ReplaceGrants(_ context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	item, ok := b.items[itemID]
	if !ok {
		return 0, fmt.Errorf("%w: vault item not found", adapter.ErrNotFound)
	}
	if item.ShareVersion != expectedVersion {
		return 0, models.ErrShareVersionConflict
	}

	item.ShareVersion++
	b.items[itemID] = item
	b.grants[itemID] = slices.Clone(memberIDs)
	return item.ShareVersion, nil
}

func (s *fakeServer) SelectGrants(_ context.Context, itemID string) ([]models.ShareGrant, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.ShareGrant
	for _, m := range b.grants[itemID] {
		out = append(out, models.ShareGrant{VaultItemID: itemID, MemberID: m})
	}
	return out, nil
}

func (s *fakeServer) DeleteGrants(_ context.Context, itemID string) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.grants, itemID)
	return nil
}

// scriptedPrompter answers prompts from fixed queues and records the
// prompts it was asked.
type scriptedPrompter struct {
	lines   []string
	secrets []string
	asked   []string
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error) {
	p.asked = append(p.asked, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) ReadSecret(prompt string) ([]byte, error) {
	p.asked = append(p.asked, prompt)
	if len(p.secrets) == 0 {
		return nil, io.EOF
	}
	secret := p.secrets[0]
	p.secrets = p.secrets[1:]
	return []byte(secret), nil
}

func (p *scriptedPrompter) push(secrets ...string) {
	p.secrets = append(p.secrets, secrets...)
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}
