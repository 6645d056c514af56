package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func TestBuildSelectItemsQuery(t *testing.T) {
	const selectPrefix = "SELECT vi.id, vi.title, vi.description_encrypted, vi.owner_id, vi.family_id, vi.share_version, vi.created_at FROM vault_items vi"
	const orderBy = " ORDER BY vi.created_at DESC, vi.id DESC"

	tests := []struct {
		name     string
		query    models.ItemQuery
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "by id",
			query:    models.ItemQuery{ID: "item-1"},
			wantSQL:  selectPrefix + " WHERE vi.id = $1" + orderBy,
			wantArgs: []any{"item-1"},
		},
		{
			name:     "owned with limit",
			query:    models.ItemQuery{OwnerID: "owner-1", Limit: 20},
			wantSQL:  selectPrefix + " WHERE vi.owner_id = $1" + orderBy + " LIMIT 20",
			wantArgs: []any{"owner-1"},
		},
		{
			name:     "shared with member and id",
			query:    models.ItemQuery{ID: "item-1", SharedWith: "alice"},
			wantSQL:  selectPrefix + " JOIN vault_shares vs ON vs.vault_item_id = vi.id WHERE vs.shared_with = $1 AND vi.id = $2" + orderBy,
			wantArgs: []any{"alice", "item-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectItemsQuery(pgBuilder, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildSelectItemsQuery_RequiresFilter(t *testing.T) {
	_, _, err := buildSelectItemsQuery(pgBuilder, models.ItemQuery{Limit: 10})
	assert.ErrorIs(t, err, ErrEmptyItemQuery)
}

func TestBuildBumpShareVersionQuery(t *testing.T) {
	query, args, err := buildBumpShareVersionQuery(pgBuilder, "item-1", 5)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE vault_items SET share_version = share_version + 1 WHERE id = $1 AND share_version = $2", query)
	assert.Equal(t, []any{"item-1", int64(5)}, args)
}

func TestBuildInsertGrantsQuery(t *testing.T) {
	ts := time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC)
	query, args, err := buildInsertGrantsQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), []models.ShareGrant{
		{VaultItemID: "item-1", MemberID: "alice", CreatedAt: ts},
		{VaultItemID: "item-1", MemberID: "bob", CreatedAt: ts},
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO vault_shares (vault_item_id,shared_with,created_at) VALUES (?,?,?),(?,?,?) ON CONFLICT (vault_item_id, shared_with) DO NOTHING", query)
	assert.Len(t, args, 6)
}

func TestBuildInsertItemQuery_StoresEnvelopeValuer(t *testing.T) {
	item := models.VaultItem{ID: "item-1", OwnerID: "o", FamilyID: "f", Title: "t", Envelope: testEnvelope()}

	_, args, err := buildInsertItemQuery(pgBuilder, item)
	require.NoError(t, err)
	require.Len(t, args, 7)
	assert.Equal(t, testEnvelope(), args[4])
}
