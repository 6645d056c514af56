package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-family-vault/internal/config"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/utils"
	"github.com/MKhiriev/go-family-vault/models"
)

const userAgent = "family-vault-client"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL comes from cfg.ServerAddress; a missing
// scheme defaults to http.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CurrentUser implements [vault.IdentityProvider]. The identity is the
// subject of the held token; the server verifies the signature on every
// request, so it is not checked here. No token means no identity.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (*models.Identity, error) {
	token := h.Token()
	if token == "" {
		return nil, nil
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*httpServerAdapter.CurrentUser").Msg("held token is unreadable")
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return &models.Identity{ID: userID}, nil
}

// Register POSTs to /api/auth/register and keeps the token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return h.storeToken(resp)
}

// Login POSTs to /api/auth/login and keeps the token from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return h.storeToken(resp)
}

func (h *httpServerAdapter) storeToken(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// GetProfile implements [vault.ProfileSource].
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	resp, err := req.SetResult(&profile).Get("/api/profile/")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// ListFamilyMembers implements [vault.ProfileSource].
func (h *httpServerAdapter) ListFamilyMembers(ctx context.Context) ([]models.Profile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var members []models.Profile
	resp, err := req.SetResult(&members).Get("/api/family/members")
	if err != nil {
		return nil, fmt.Errorf("list family members request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return members, nil
}

func (h *httpServerAdapter) CreateFamily(ctx context.Context, name string) (models.Family, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Family{}, err
	}

	var family models.Family
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.Family{Name: name}).
		SetResult(&family).
		Post("/api/family/")
	if err != nil {
		return models.Family{}, fmt.Errorf("create family request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Family{}, err
	}

	return family, nil
}

func (h *httpServerAdapter) JoinFamily(ctx context.Context, familyID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.JoinFamilyRequest{FamilyID: familyID}).
		Post("/api/family/join")
	if err != nil {
		return fmt.Errorf("join family request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version does not need a token.
func (h *httpServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
