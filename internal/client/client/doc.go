// Package client is the gRPC client for the vault service. It attaches the
// caller's access token to every request and fills the acting user from the
// token's subject, so callers only supply operation arguments.
package client
