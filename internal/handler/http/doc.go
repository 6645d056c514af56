// Package http implements the REST transport of the vault server.
//
// It wires the chi router, request handlers and middleware. Bearer token
// authentication, per-IP throttling of the auth routes, request tracing,
// access logging and response compression are handled here before requests
// reach the service layer. Handlers never see plaintext secrets: vault items
// arrive and leave as ciphertext envelopes.
package http
