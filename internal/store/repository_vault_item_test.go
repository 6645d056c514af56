package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

var vaultItemRowColumns = []string{"id", "title", "description_encrypted", "owner_id", "family_id", "share_version", "created_at"}

func TestVaultItemRepository_InsertItem(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vault_items (id,owner_id,family_id,title,description_encrypted,share_version,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)")).
		WithArgs(sqlmock.AnyArg(), "owner-1", "family-1", "Wifi", encodedTestEnvelope(t), int64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item, err := repo.InsertItem(testContext(), models.VaultItem{
		Title:        "Wifi",
		Envelope:     testEnvelope(),
		OwnerID:      "owner-1",
		FamilyID:     "family-1",
		ShareVersion: 7,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, int64(0), item.ShareVersion)
	assert.Equal(t, testEnvelope(), item.Envelope)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultItemRepository_InsertItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unknown family", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrUnknownReference},
		{name: "driver failure", dbErr: errors.New("connection reset"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

			mock.ExpectExec("INSERT INTO vault_items").WillReturnError(tt.dbErr)

			_, err := repo.InsertItem(testContext(), models.VaultItem{
				Title: "Wifi", Envelope: testEnvelope(), OwnerID: "o", FamilyID: "f",
			})
			assert.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVaultItemRepository_InsertItem_RejectsEmptyEnvelope(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	_, err := repo.InsertItem(testContext(), models.VaultItem{Title: "Wifi", OwnerID: "o", FamilyID: "f"})
	assert.ErrorIs(t, err, models.ErrMalformedEnvelope)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultItemRepository_SelectItems_Owned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	newer := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items vi WHERE vi.owner_id = $1 ORDER BY vi.created_at DESC, vi.id DESC")).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows(vaultItemRowColumns).
			AddRow("item-2", "Bank", encodedTestEnvelope(t), "owner-1", "family-1", int64(2), newer).
			AddRow("item-1", "Wifi", encodedTestEnvelope(t), "owner-1", "family-1", int64(0), older))

	items, err := repo.SelectItems(testContext(), models.ItemQuery{OwnerID: "owner-1"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "item-2", items[0].ID)
	assert.Equal(t, int64(2), items[0].ShareVersion)
	assert.Equal(t, testEnvelope(), items[0].Envelope)
	assert.Equal(t, "item-1", items[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultItemRepository_SelectItems_SharedJoinsGrants(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_items vi JOIN vault_shares vs ON vs.vault_item_id = vi.id WHERE vs.shared_with = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(vaultItemRowColumns).
			AddRow("item-1", "Wifi", encodedTestEnvelope(t), "owner-1", "family-1", int64(1), time.Now()))

	items, err := repo.SelectItems(testContext(), models.ItemQuery{SharedWith: "alice"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "owner-1", items[0].OwnerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultItemRepository_SelectItems_MalformedEnvelopeRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("FROM vault_items vi").
		WillReturnRows(sqlmock.NewRows(vaultItemRowColumns).
			AddRow("item-1", "Wifi", "plaintext that should never be here", "owner-1", "family-1", int64(0), time.Now()))

	_, err := repo.SelectItems(testContext(), models.ItemQuery{ID: "item-1"})
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, models.ErrMalformedEnvelope)
}

func TestVaultItemRepository_SelectItems_EmptyQuery(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	_, err := repo.SelectItems(testContext(), models.ItemQuery{})
	assert.ErrorIs(t, err, ErrEmptyItemQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultItemRepository_SelectItems_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("FROM vault_items vi").WillReturnError(errors.New("boom"))

	_, err := repo.SelectItems(testContext(), models.ItemQuery{OwnerID: "o"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestVaultItemRepository_DeleteItem(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vault_items WHERE id = $1")).
					WithArgs("item-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM vault_items").
					WithArgs("item-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrItemNotFound,
		},
		{
			name: "grants still reference item",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM vault_items").
					WithArgs("item-1").
					WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrGrantsExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewVaultItemRepository(newDBFromSQL(db), logger.Nop())
			tt.setup(mock)

			err := repo.DeleteItem(testContext(), "item-1")
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
