// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/models"
)

const (
	itemsPath  = "/api/vault/items"
	itemPath   = "/api/vault/items/{id}"
	sharesPath = "/api/vault/items/{id}/shares"
)

// InsertItem implements [vault.RecordStore]. The server assigns the owner
// and family from the token.
func (h *httpServerAdapter) InsertItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.VaultItem{}, err
	}

	var created models.VaultItem
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post(itemsPath)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("insert item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return created, nil
}

// SelectItems implements [vault.RecordStore]. The server only lists the
// caller's side of the sharing relation, so OwnerID and SharedWith must name
// the token's subject. A lookup by ID that the server answers with 404
// yields an empty result.
func (h *httpServerAdapter) SelectItems(ctx context.Context, q models.ItemQuery) ([]models.VaultItem, error) {
	if q.ID != "" {
		return h.selectItem(ctx, q.ID)
	}

	var scope models.ItemScope
	switch {
	case q.OwnerID != "":
		scope = models.ScopeOwned
		if err := h.requireSubject(ctx, q.OwnerID); err != nil {
			return nil, err
		}
	case q.SharedWith != "":
		scope = models.ScopeShared
		if err := h.requireSubject(ctx, q.SharedWith); err != nil {
			return nil, err
		}
	default:
		return nil, ErrEmptyItemQuery
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	req.SetQueryParam("scope", string(scope))
	if q.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(q.Limit, 10))
	}

	var items []models.VaultItem
	resp, err := req.SetResult(&items).Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpServerAdapter) selectItem(ctx context.Context, itemID string) ([]models.VaultItem, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var item models.VaultItem
	resp, err := req.
		SetPathParam("id", itemID).
		SetResult(&item).
		Get(itemPath)
	if err != nil {
		return nil, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return []models.VaultItem{item}, nil
}

func (h *httpServerAdapter) requireSubject(ctx context.Context, userID string) error {
	identity, err := h.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if identity == nil {
		return ErrNotLoggedIn
	}
	if identity.ID != userID {
		logger.FromContext(ctx).Warn().Str("func", "*httpServerAdapter.requireSubject").Msg("query names another user")
		return ErrForbidden
	}
	return nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", itemID).Delete(itemPath)
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// ReplaceGrants implements [vault.RecordStore]. A lost race comes back as
// [models.ErrShareVersionConflict].
func (h *httpServerAdapter) ReplaceGrants(ctx context.Context, itemID string, expectedVersion int64, memberIDs []string) (int64, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	if memberIDs == nil {
		memberIDs = []string{}
	}

	var result models.ShareResponse
	resp, err := req.
		SetPathParam("id", itemID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{ExpectedVersion: expectedVersion, MemberIDs: memberIDs}).
		SetResult(&result).
		Put(sharesPath)
	if err != nil {
		return 0, fmt.Errorf("replace grants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ShareVersion, nil
}

func (h *httpServerAdapter) SelectGrants(ctx context.Context, itemID string) ([]models.ShareGrant, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.GrantsResponse
	resp, err := req.
		SetPathParam("id", itemID).
		SetResult(&result).
		Get(sharesPath)
	if err != nil {
		return nil, fmt.Errorf("list grants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	grants := make([]models.ShareGrant, 0, len(result.MemberIDs))
	for _, id := range result.MemberIDs {
		grants = append(grants, models.ShareGrant{VaultItemID: itemID, MemberID: id})
	}

	return grants, nil
}

func (h *httpServerAdapter) DeleteGrants(ctx context.Context, itemID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", itemID).Delete(sharesPath)
	if err != nil {
		return fmt.Errorf("delete grants request: %w", err)
	}

	return mapHTTPError(resp)
}
