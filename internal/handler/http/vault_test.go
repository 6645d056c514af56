package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/internal/app"
	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/service"
	"github.com/MKhiriev/go-family-vault/internal/store"
	"github.com/MKhiriev/go-family-vault/models"
)

var testEnvelope = models.Envelope{
	EncryptedData: "c2VjcmV0",
	Salt:          "AAAAAAAAAAAAAAAAAAAAAA==",
	IV:            "AAAAAAAAAAAAAAAA",
}

func TestCreateItem(t *testing.T) {
	vault := &fakeVaultService{
		createItemFn: func(_ context.Context, callerID string, item models.VaultItem) (models.VaultItem, error) {
			assert.Equal(t, testUserID, callerID)
			assert.Equal(t, testEnvelope, item.Envelope)

			item.ID = "item-1"
			item.OwnerID = callerID
			item.FamilyID = "fam"
			return item, nil
		},
	}
	srv := newTestServer(t, &service.Services{VaultService: vault}, config.App{})

	body, err := json.Marshal(models.VaultItem{Title: "Wifi", Envelope: testEnvelope})
	require.NoError(t, err)

	resp, respBody := do(t, srv, http.MethodPost, "/api/vault/items", string(body), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.VaultItem
	require.NoError(t, json.Unmarshal([]byte(respBody), &created))
	assert.Equal(t, "item-1", created.ID)
	assert.Equal(t, testEnvelope, created.Envelope)
}

func TestCreateItem_MalformedEnvelope(t *testing.T) {
	srv := newTestServer(t, &service.Services{}, config.App{})

	resp, body := do(t, srv, http.MethodPost, "/api/vault/items", `{"title":"x","description_encrypted":"not json"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, app.MsgInvalidJSON)
}

func TestListItems(t *testing.T) {
	var gotScope models.ItemScope
	var gotLimit uint64
	vault := &fakeVaultService{
		listItemsFn: func(_ context.Context, _ string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error) {
			gotScope, gotLimit = scope, limit
			return nil, nil
		},
	}
	srv := newTestServer(t, &service.Services{VaultService: vault}, config.App{})

	resp, body := do(t, srv, http.MethodGet, "/api/vault/items?scope=shared&limit=5", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, body)
	assert.Equal(t, models.ScopeShared, gotScope)
	assert.Equal(t, uint64(5), gotLimit)

	resp, _ = do(t, srv, http.MethodGet, "/api/vault/items", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.ScopeOwned, gotScope)
	assert.Zero(t, gotLimit)

	resp, _ = do(t, srv, http.MethodGet, "/api/vault/items?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVaultRoutes_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "get invisible", method: http.MethodGet, path: "/api/vault/items/item-9", err: store.ErrItemNotFound, wantStatus: http.StatusNotFound, wantBody: app.MsgItemNotFound},
		{name: "delete while shared", method: http.MethodDelete, path: "/api/vault/items/item-1", err: fmt.Errorf("delete item: %w", store.ErrGrantsExist), wantStatus: http.StatusConflict, wantBody: app.MsgGrantsExist},
		{name: "delete not owner", method: http.MethodDelete, path: "/api/vault/items/item-1", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantBody: app.MsgAccessDenied},
		{name: "share conflict", method: http.MethodPut, path: "/api/vault/items/item-1/shares", body: `{"expected_version":1,"member_ids":["a"]}`, err: store.ErrVersionConflict, wantStatus: http.StatusConflict, wantBody: app.MsgVersionConflict},
		{name: "share outsider", method: http.MethodPut, path: "/api/vault/items/item-1/shares", body: `{"expected_version":1,"member_ids":["x"]}`, err: fmt.Errorf("%w: x", service.ErrNotFamilyMember), wantStatus: http.StatusBadRequest, wantBody: app.MsgNotFamilyMember},
		{name: "revoke not owner", method: http.MethodDelete, path: "/api/vault/items/item-1/shares", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantBody: app.MsgAccessDenied},
		{name: "list shares db down", method: http.MethodGet, path: "/api/vault/items/item-1/shares", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &fakeVaultService{
				getItemFn: func(context.Context, string, string) (models.VaultItem, error) {
					return models.VaultItem{}, tt.err
				},
				deleteItemFn: func(context.Context, string, string) error { return tt.err },
				listGrantsFn: func(context.Context, string, string) ([]models.ShareGrant, error) {
					return nil, tt.err
				},
				replaceGrantsFn: func(context.Context, string, string, models.ShareRequest) (int64, error) {
					return 0, tt.err
				},
				deleteGrantsFn: func(context.Context, string, string) error { return tt.err },
			}
			srv := newTestServer(t, &service.Services{VaultService: vault}, config.App{})

			resp, body := do(t, srv, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, body, tt.wantBody)
		})
	}
}

func TestShares(t *testing.T) {
	vault := &fakeVaultService{
		listGrantsFn: func(_ context.Context, _ string, itemID string) ([]models.ShareGrant, error) {
			return []models.ShareGrant{{VaultItemID: itemID, MemberID: "alice"}, {VaultItemID: itemID, MemberID: "bob"}}, nil
		},
		replaceGrantsFn: func(_ context.Context, _ string, itemID string, req models.ShareRequest) (int64, error) {
			assert.Equal(t, "item-1", itemID)
			assert.Equal(t, models.ShareRequest{ExpectedVersion: 3, MemberIDs: []string{"alice"}}, req)
			return 4, nil
		},
		deleteGrantsFn: func(context.Context, string, string) error { return nil },
	}
	srv := newTestServer(t, &service.Services{VaultService: vault}, config.App{})

	resp, body := do(t, srv, http.MethodGet, "/api/vault/items/item-1/shares", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"member_ids":["alice","bob"]}`, body)

	resp, body = do(t, srv, http.MethodPut, "/api/vault/items/item-1/shares", `{"expected_version":3,"member_ids":["alice"]}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"share_version":4}`, body)

	resp, _ = do(t, srv, http.MethodDelete, "/api/vault/items/item-1/shares", "", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestFamilyRoutes(t *testing.T) {
	familyID := "fam"
	fam := &fakeFamilyService{
		getProfileFn: func(_ context.Context, userID string) (models.Profile, error) {
			return models.Profile{UserID: userID, FullName: "Mom", FamilyID: &familyID, Role: models.RoleParent}, nil
		},
		createFamilyFn: func(_ context.Context, _ string, name string) (models.Family, error) {
			return models.Family{ID: familyID, Name: name}, nil
		},
		joinFamilyFn: func(_ context.Context, _ string, id string) error {
			if id != familyID {
				return store.ErrFamilyNotFound
			}
			return service.ErrAlreadyInFamily
		},
		listFamilyMembersFn: func(context.Context, string) ([]models.Profile, error) {
			return nil, service.ErrNoFamily
		},
	}
	srv := newTestServer(t, &service.Services{FamilyService: fam}, config.App{})

	resp, body := do(t, srv, http.MethodGet, "/api/profile/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":"user-1","full_name":"Mom","family_id":"fam","role":"parent"}`, body)

	resp, body = do(t, srv, http.MethodPost, "/api/family/", `{"name":"Smiths"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, `"Smiths"`)

	resp, body = do(t, srv, http.MethodPost, "/api/family/join", `{"family_id":"other"}`, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, app.MsgFamilyNotFound)

	resp, body = do(t, srv, http.MethodPost, "/api/family/join", `{"family_id":"fam"}`, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, app.MsgAlreadyInFamily)

	resp, body = do(t, srv, http.MethodGet, "/api/family/members", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, app.MsgNoFamily)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, &service.Services{}, config.App{})

	for _, token := range []string{"-", "forged"} {
		resp, body := do(t, srv, http.MethodGet, "/api/vault/items", "", token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, app.MsgTokenIsExpiredOrInvalid)
	}
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t, &service.Services{BuildInfo: models.NewAppBuildInfo("1.2.3", "", "abc")}, config.App{})

	resp, body := do(t, srv, http.MethodGet, "/api/version/", "", "-")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"version":"1.2.3","date":"N/A","commit":"abc"}`, body)
}
