// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the family-vault command line client.
//
// The CLI talks to the server through the HTTP adapter and keeps only the
// account token on disk. Vault commands unlock a [vault.Session] with the
// master password on demand; the interactive shell keeps that session open
// between commands and locks it after the configured idle time.
package client
