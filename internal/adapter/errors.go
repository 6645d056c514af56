package adapter

import "errors"

// Sentinels for non-2xx responses. The response body, when present, is kept
// in the wrapped error text.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotLoggedIn is returned before any request when no token is held.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEmptyItemQuery is returned by SelectItems when no filter is set.
	ErrEmptyItemQuery = errors.New("item query has no filter")
)
