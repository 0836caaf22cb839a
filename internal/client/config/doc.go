// Package config loads runtime configuration for the vault CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the vault gRPC endpoint
//	-w duration   per-request timeout (e.g., "5s")
//	-k string     access token; when empty the client asks for one
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "access_token": "eyJhbGciOi..."
//	}
//
// This package does not read environment variables directly.
package config
