package mcp

import (
	"github.com/custodia-labs/keyscan/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Scan finds keywords in documents.
	Scan driving.ScanService

	// Settings supplies the default keyword list. Optional; the built-in
	// keywords are used without it.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Scan == nil {
		return ErrMissingScanService
	}
	return nil
}
