// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-vault/models"
)

// Column lists shared by builders and row scanners; the order here is the
// scan order.
var (
	vaultItemColumns = []string{
		"vi.id",
		"vi.title",
		"vi.description_encrypted",
		"vi.owner_id",
		"vi.family_id",
		"vi.share_version",
		"vi.created_at",
	}

	profileColumns = []string{"id", "full_name", "family_id", "role"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("id", "login", "password_hash", "created_at").
		Values(user.UserID, user.Login, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.Profile) (string, []any, error) {
	return b.Insert("profiles").
		Columns("id", "full_name", "role").
		Values(profile.UserID, profile.FullName, profile.Role).
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("id", "login", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildSelectProfileQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSelectFamilyMembersQuery(b sq.StatementBuilderType, familyID string) (string, []any, error) {
	return b.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"family_id": familyID}).
		OrderBy("full_name", "id").
		ToSql()
}

func buildInsertFamilyQuery(b sq.StatementBuilderType, family models.Family) (string, []any, error) {
	return b.Insert("families").
		Columns("id", "name", "created_at").
		Values(family.ID, family.Name, family.CreatedAt).
		ToSql()
}

func buildSelectFamilyQuery(b sq.StatementBuilderType, familyID string) (string, []any, error) {
	return b.Select("id", "name", "created_at").
		From("families").
		Where(sq.Eq{"id": familyID}).
		ToSql()
}

func buildSetProfileFamilyQuery(b sq.StatementBuilderType, userID, familyID, role string) (string, []any, error) {
	return b.Update("profiles").
		Set("family_id", familyID).
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertItemQuery(b sq.StatementBuilderType, item models.VaultItem) (string, []any, error) {
	return b.Insert("vault_items").
		Columns("id", "owner_id", "family_id", "title", "description_encrypted", "share_version", "created_at").
		Values(item.ID, item.OwnerID, item.FamilyID, item.Title, item.Envelope, item.ShareVersion, item.CreatedAt).
		ToSql()
}

// buildSelectItemsQuery applies every non-empty filter of q (AND), newest
// first. SharedWith resolves through the grant relation.
func buildSelectItemsQuery(b sq.StatementBuilderType, q models.ItemQuery) (string, []any, error) {
	if q.ID == "" && q.OwnerID == "" && q.SharedWith == "" {
		return "", nil, ErrEmptyItemQuery
	}

	sel := b.Select(vaultItemColumns...).From("vault_items vi")

	if q.SharedWith != "" {
		sel = sel.Join("vault_shares vs ON vs.vault_item_id = vi.id").
			Where(sq.Eq{"vs.shared_with": q.SharedWith})
	}
	if q.ID != "" {
		sel = sel.Where(sq.Eq{"vi.id": q.ID})
	}
	if q.OwnerID != "" {
		sel = sel.Where(sq.Eq{"vi.owner_id": q.OwnerID})
	}

	sel = sel.OrderBy("vi.created_at DESC", "vi.id DESC")
	if q.Limit > 0 {
		sel = sel.Limit(q.Limit)
	}

	return sel.ToSql()
}

func buildDeleteItemQuery(b sq.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Delete("vault_items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
}

// buildBumpShareVersionQuery is the compare-and-set guarding a grant
// replacement: it matches only while the stored version is expectedVersion.
func buildBumpShareVersionQuery(b sq.StatementBuilderType, itemID string, expectedVersion int64) (string, []any, error) {
	return b.Update("vault_items").
		Set("share_version", sq.Expr("share_version + 1")).
		Where(sq.Eq{"id": itemID, "share_version": expectedVersion}).
		ToSql()
}

func buildSelectShareVersionQuery(b sq.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Select("share_version").
		From("vault_items").
		Where(sq.Eq{"id": itemID}).
		ToSql()
}

func buildDeleteGrantsQuery(b sq.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Delete("vault_shares").
		Where(sq.Eq{"vault_item_id": itemID}).
		ToSql()
}

// buildInsertGrantsQuery writes one row per member. Re-inserting an existing
// pair is a no-op.
func buildInsertGrantsQuery(b sq.StatementBuilderType, grants []models.ShareGrant) (string, []any, error) {
	ins := b.Insert("vault_shares").Columns("vault_item_id", "shared_with", "created_at")
	for _, g := range grants {
		ins = ins.Values(g.VaultItemID, g.MemberID, g.CreatedAt)
	}

	return ins.Suffix("ON CONFLICT (vault_item_id, shared_with) DO NOTHING").ToSql()
}

func buildSelectGrantsQuery(b sq.StatementBuilderType, itemID string) (string, []any, error) {
	return b.Select("vault_item_id", "shared_with", "created_at").
		From("vault_shares").
		Where(sq.Eq{"vault_item_id": itemID}).
		OrderBy("shared_with").
		ToSql()
}

func buildDeleteOrphanedGrantsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Delete("vault_shares").
		Where("vault_item_id NOT IN (SELECT id FROM vault_items)").
		ToSql()
}
