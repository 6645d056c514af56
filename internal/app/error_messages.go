// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by both the
// family vault server and its client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies by the server handlers. The client adapter reads them back
// to tell apart errors that share a status code, so the wording is part of
// the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation
	// (e.g. missing required fields, malformed envelope, unknown scope).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the caller may see an item but is not
	// its owner.
	MsgAccessDenied = "access denied"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgItemNotFound is returned when a vault item does not exist or is not
	// visible to the caller.
	MsgItemNotFound = "vault item not found"

	// MsgProfileNotFound is returned when the caller has no profile.
	MsgProfileNotFound = "profile not found"

	// MsgFamilyNotFound is returned when joining a family id that does not
	// exist.
	MsgFamilyNotFound = "family not found"

	// MsgNoFamily is returned when the operation needs the caller to belong
	// to a family.
	MsgNoFamily = "no family found"

	// MsgAlreadyInFamily is returned when the caller already belongs to a
	// family.
	MsgAlreadyInFamily = "already a member of a family"

	// MsgNotFamilyMember is returned when a share recipient is outside the
	// item's family.
	MsgNotFamilyMember = "recipient is not a member of the family"

	// MsgVersionConflict is returned when the grant set was replaced by
	// someone else since the caller read it. The client should reload the
	// item before retrying.
	MsgVersionConflict = "share version conflict, reload and retry"

	// MsgGrantsExist is returned when deleting an item that is still shared.
	MsgGrantsExist = "vault item is still shared"

	// MsgTooManyRequests is returned by the auth rate limiter.
	MsgTooManyRequests = "too many requests"
)
