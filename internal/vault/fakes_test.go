package vault

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-vault/models"
)

var errGrantsExist = errors.New("item still has grants")

// memRecords is an in-memory RecordStore with the same constraint behaviour
// as the SQL repositories: items with grants cannot be deleted, and grant
// replacement is a compare-and-set on the share version.
type memRecords struct {
	mu     sync.Mutex
	seq    int
	clock  time.Time
	items  map[string]models.VaultItem
	grants map[string][]string
}

func newMemRecords() *memRecords {
	return &memRecords{
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		items:  make(map[string]models.VaultItem),
		grants: make(map[string][]string),
	}
}

func (m *memRecords) InsertItem(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.clock = m.clock.Add(time.Second)
	item.ID = fmt.Sprintf("item-%d", m.seq)
	item.CreatedAt = m.clock
	item.ShareVersion = 0
	m.items[item.ID] = item

	return item, nil
}

func (m *memRecords) SelectItems(_ context.Context, q models.ItemQuery) ([]models.VaultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.VaultItem
	for _, item := range m.items {
		switch {
		case q.ID != "" && item.ID != q.ID:
			continue
		case q.OwnerID != "" && item.OwnerID != q.OwnerID:
			continue
		case q.SharedWith != "" && !slices.Contains(m.grants[item.ID], q.SharedWith):
			continue
		}
		out = append(out, item)
	}

	slices.SortFunc(out, func(a, b models.VaultItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if q.Limit > 0 && uint64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}

	return out, nil
}

func (m *memRecords) DeleteItem(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.grants[itemID]) > 0 {
		return errGrantsExist
	}
	delete(m.items, itemID)
	return nil
}

func (m *memRecords) ReplaceGrants(_ context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[itemID]
	if !ok || item.ShareVersion != expectedVersion {
		return 0, ErrShareVersionConflict
	}

	item.ShareVersion++
	m.items[itemID] = item
	m.grants[itemID] = slices.Clone(memberIDs)

	return item.ShareVersion, nil
}

func (m *memRecords) SelectGrants(_ context.Context, itemID string) ([]models.ShareGrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.ShareGrant
	for _, member := range m.grants[itemID] {
		out = append(out, models.ShareGrant{VaultItemID: itemID, MemberID: member})
	}
	return out, nil
}

func (m *memRecords) DeleteGrants(_ context.Context, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.grants, itemID)
	return nil
}

// staticIdentity returns a fixed user; a nil identity means signed out.
type staticIdentity struct {
	identity *models.Identity
}

func (s staticIdentity) CurrentUser(context.Context) (*models.Identity, error) {
	return s.identity, nil
}

func as(id string) staticIdentity {
	return staticIdentity{identity: &models.Identity{ID: id}}
}

// staticProfiles serves one profile and a fixed member list.
type staticProfiles struct {
	profile models.Profile
	members []models.Profile
	err     error
}

func (s staticProfiles) GetProfile(context.Context) (models.Profile, error) {
	return s.profile, s.err
}

func (s staticProfiles) ListFamilyMembers(context.Context) ([]models.Profile, error) {
	return s.members, s.err
}

func inFamily(userID, familyID string) staticProfiles {
	return staticProfiles{profile: models.Profile{UserID: userID, FamilyID: &familyID, Role: models.RoleMember}}
}
