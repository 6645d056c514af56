// Package config provides configuration loading, merging, and validation
// for the vault server and the CLI client.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. JSON or YAML config file (path from CONFIG or -c)
//  2. Environment variables
//  3. Command-line flags
//
// Fields left unset by every source receive defaults. The entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the client.
package config
