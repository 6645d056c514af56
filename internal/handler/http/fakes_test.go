package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/service"
	"github.com/MKhiriev/go-family-vault/models"
)

const (
	testToken  = "good.jwt.token"
	testUserID = "user-1"
)

// fakeAuthService implements service.AuthService. Unset login/register
// functions panic so that unexpected calls fail the test loudly.
type fakeAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return f.registerUserFn(ctx, user)
}

func (f *fakeAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return f.loginFn(ctx, user)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "issued-for-" + user.UserID, UserID: user.UserID}, nil
}

// ParseToken accepts only testToken.
func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: testUserID}, nil
}

type fakeFamilyService struct {
	getProfileFn        func(ctx context.Context, userID string) (models.Profile, error)
	createFamilyFn      func(ctx context.Context, userID, name string) (models.Family, error)
	joinFamilyFn        func(ctx context.Context, userID, familyID string) error
	listFamilyMembersFn func(ctx context.Context, userID string) ([]models.Profile, error)
}

func (f *fakeFamilyService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeFamilyService) CreateFamily(ctx context.Context, userID, name string) (models.Family, error) {
	return f.createFamilyFn(ctx, userID, name)
}

func (f *fakeFamilyService) JoinFamily(ctx context.Context, userID, familyID string) error {
	return f.joinFamilyFn(ctx, userID, familyID)
}

func (f *fakeFamilyService) ListFamilyMembers(ctx context.Context, userID string) ([]models.Profile, error) {
	return f.listFamilyMembersFn(ctx, userID)
}

type fakeVaultService struct {
	createItemFn    func(ctx context.Context, callerID string, item models.VaultItem) (models.VaultItem, error)
	listItemsFn     func(ctx context.Context, callerID string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error)
	getItemFn       func(ctx context.Context, callerID, itemID string) (models.VaultItem, error)
	deleteItemFn    func(ctx context.Context, callerID, itemID string) error
	listGrantsFn    func(ctx context.Context, callerID, itemID string) ([]models.ShareGrant, error)
	replaceGrantsFn func(ctx context.Context, callerID, itemID string, req models.ShareRequest) (int64, error)
	deleteGrantsFn  func(ctx context.Context, callerID, itemID string) error
}

func (f *fakeVaultService) CreateItem(ctx context.Context, callerID string, item models.VaultItem) (models.VaultItem, error) {
	return f.createItemFn(ctx, callerID, item)
}

func (f *fakeVaultService) ListItems(ctx context.Context, callerID string, scope models.ItemScope, limit uint64) ([]models.VaultItem, error) {
	return f.listItemsFn(ctx, callerID, scope, limit)
}

func (f *fakeVaultService) GetItem(ctx context.Context, callerID, itemID string) (models.VaultItem, error) {
	return f.getItemFn(ctx, callerID, itemID)
}

func (f *fakeVaultService) DeleteItem(ctx context.Context, callerID, itemID string) error {
	return f.deleteItemFn(ctx, callerID, itemID)
}

func (f *fakeVaultService) ListGrants(ctx context.Context, callerID, itemID string) ([]models.ShareGrant, error) {
	return f.listGrantsFn(ctx, callerID, itemID)
}

func (f *fakeVaultService) ReplaceGrants(ctx context.Context, callerID, itemID string, req models.ShareRequest) (int64, error) {
	return f.replaceGrantsFn(ctx, callerID, itemID, req)
}

func (f *fakeVaultService) DeleteGrants(ctx context.Context, callerID, itemID string) error {
	return f.deleteGrantsFn(ctx, callerID, itemID)
}

// newTestServer serves the full router over httptest. Zero-valued services
// are replaced by empty fakes.
func newTestServer(t *testing.T, services *service.Services, appCfg config.App) *httptest.Server {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.FamilyService == nil {
		services.FamilyService = &fakeFamilyService{}
	}
	if services.VaultService == nil {
		services.VaultService = &fakeVaultService{}
	}

	h := NewHandler(services, appCfg, config.Server{}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

// do sends a request with testToken unless token is "-". The body is read
// and the response closed.
func do(t *testing.T, srv *httptest.Server, method, path, body, token string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token == "" {
		token = testToken
	}
	if token != "-" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}
