package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrInvalidEnvelope   = errors.New("invalid ciphertext envelope")
	ErrInvalidOwnerID    = errors.New("invalid owner ID")
	ErrInvalidVersion    = errors.New("invalid share version")
	ErrEmptyMemberID     = errors.New("member ID cannot be empty")
	ErrTooManyRecipients = errors.New("too many share recipients")
	ErrEmptyFamilyName   = errors.New("family name is required")
	ErrFamilyNameTooLong = errors.New("family name is too long")
)
