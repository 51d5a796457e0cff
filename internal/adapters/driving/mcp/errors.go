// Package mcp provides an MCP (Model Context Protocol) server adapter for keyscan.
// It lets AI assistants scan local documents for keywords.
package mcp

import "errors"

// ErrMissingScanService is returned when the scan service is not provided.
var ErrMissingScanService = errors.New("mcp: scan service is required")
