// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers carried neither transport.
var errNoServersAreCreated = errors.New("vault server has no transport to serve")
