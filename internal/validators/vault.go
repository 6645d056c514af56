package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-family-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the plaintext label of a vault item.
	FieldTitle = "title"

	// FieldEnvelope targets the ciphertext envelope of a vault item.
	FieldEnvelope = "envelope"

	// FieldOwnerID targets the owner of a vault item.
	FieldOwnerID = "owner_id"

	// FieldExpectedVersion targets the share version a grant replacement
	// is based on.
	FieldExpectedVersion = "expected_version"

	// FieldMemberIDs targets the recipients of a grant replacement.
	FieldMemberIDs = "member_ids"

	// FieldFamilyName targets the name of a new family.
	FieldFamilyName = "family_name"
)

const (
	// MaxTitleLength is the longest accepted item title, in runes.
	MaxTitleLength = 200

	// MaxShareRecipients caps the grant set of one item.
	MaxShareRecipients = 64

	// MaxFamilyNameLength is the longest accepted family name, in runes.
	MaxFamilyNameLength = 100
)

type VaultValidator struct {
}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateItem(ctx, value, fields...)
	case *models.VaultItem:
		return v.validateItem(ctx, *value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	case models.Family:
		return v.validateFamily(ctx, value, fields...)
	case *models.Family:
		return v.validateFamily(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateItem(_ context.Context, item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldEnvelope}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(item.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldEnvelope:
			if err := item.Envelope.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
			}
		case FieldOwnerID:
			if item.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateShareRequest(_ context.Context, req models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpectedVersion, FieldMemberIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldExpectedVersion:
			if req.ExpectedVersion < 0 {
				return ErrInvalidVersion
			}
		case FieldMemberIDs:
			if len(req.MemberIDs) > MaxShareRecipients {
				return ErrTooManyRecipients
			}
			for i, id := range req.MemberIDs {
				if strings.TrimSpace(id) == "" {
					return fmt.Errorf("member at index %d: %w", i, ErrEmptyMemberID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateFamily(_ context.Context, family models.Family, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFamilyName}
	}

	for _, f := range fields {
		switch f {
		case FieldFamilyName:
			name := strings.TrimSpace(family.Name)
			if name == "" {
				return ErrEmptyFamilyName
			}
			if utf8.RuneCountInString(name) > MaxFamilyNameLength {
				return ErrFamilyNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
