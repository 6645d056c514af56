package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-family-vault/internal/app"
	"github.com/MKhiriev/go-family-vault/internal/logger"
	"github.com/MKhiriev/go-family-vault/internal/service"
	"github.com/MKhiriev/go-family-vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first target matched with
// errors.Is wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNotFamilyMember, errorResponse{http.StatusBadRequest, app.MsgNotFamilyMember}},
	{store.ErrUnknownReference, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyToken, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{ErrNoUserInContext, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{service.ErrForbidden, errorResponse{http.StatusForbidden, app.MsgAccessDenied}},

	{store.ErrItemNotFound, errorResponse{http.StatusNotFound, app.MsgItemNotFound}},
	{store.ErrProfileNotFound, errorResponse{http.StatusNotFound, app.MsgProfileNotFound}},
	{store.ErrFamilyNotFound, errorResponse{http.StatusNotFound, app.MsgFamilyNotFound}},
	{service.ErrNoFamily, errorResponse{http.StatusNotFound, app.MsgNoFamily}},

	{store.ErrVersionConflict, errorResponse{http.StatusConflict, app.MsgVersionConflict}},
	{store.ErrGrantsExist, errorResponse{http.StatusConflict, app.MsgGrantsExist}},
	{store.ErrLoginAlreadyExists, errorResponse{http.StatusConflict, app.MsgLoginAlreadyExists}},
	{service.ErrAlreadyInFamily, errorResponse{http.StatusConflict, app.MsgAlreadyInFamily}},
}

// responseFromError maps a service or store error to its HTTP status and
// public message. Anything unknown, including low-level SQL errors, is a 500.
func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes its mapped response. Server-side failures
// are logged at error level, client mistakes at warn.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", resp.status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", resp.status).Msg("request rejected")
	}

	http.Error(w, resp.message, resp.status)
}
