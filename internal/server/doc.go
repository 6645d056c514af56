// Package server runs the vault's transport servers.
//
// The HTTP API, the gRPC health service and the background workers run
// under one errgroup: a termination signal or the failure of any transport
// shuts all of them down.
package server
