package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrForbidden is returned when the caller is not the owner of an item
	// it tries to change.
	ErrForbidden = errors.New("not authorized")

	ErrNoFamily        = errors.New("no family found")
	ErrAlreadyInFamily = errors.New("user already belongs to a family")

	// ErrNotFamilyMember is returned when a share recipient is not in the
	// item's family.
	ErrNotFamilyMember = errors.New("share recipient is not a member of the item's family")
)
