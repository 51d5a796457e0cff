package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for keyscan resources.
	uriScheme = "keyscan://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "keywords",
		Name:        "keywords",
		Description: "Keywords find_keywords searches for when none are given",
		MIMEType:    "application/json",
	}, s.handleKeywordsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective scan settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleKeywordsResource returns the default keyword list.
func (s *Server) handleKeywordsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	keywords, err := s.defaultKeywords()
	if err != nil {
		return nil, err
	}

	return jsonResource(req.Params.URI, []string(keywords))
}

// handleSettingsResource returns the effective scan settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	type settingsInfo struct {
		Keywords     []string `json:"keywords"`
		ChunkSize    int      `json:"chunk_size"`
		ChunkOverlap int      `json:"chunk_overlap"`
		Workers      int      `json:"workers"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Keywords:     settings.Keywords,
		ChunkSize:    settings.ChunkSize,
		ChunkOverlap: settings.ChunkOverlap,
		Workers:      settings.Workers,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
