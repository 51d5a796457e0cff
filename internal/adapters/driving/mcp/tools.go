package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// FindKeywordsInput is the input schema for the find_keywords tool.
type FindKeywordsInput struct {
	Path     string   `json:"path" jsonschema:"absolute path of a .txt, .docx or .pdf file"`
	Keywords []string `json:"keywords,omitempty" jsonschema:"keywords to look for (default: the configured list)"`
}

// FindKeywordsOutput is the output schema for the find_keywords tool.
type FindKeywordsOutput struct {
	DocumentID string   `json:"document_id" jsonschema:"identifier of this scan, also used in verbose logs"`
	Path       string   `json:"path"`
	MediaType  string   `json:"media_type"`
	Keywords   []string `json:"keywords"`
	Count      int      `json:"count"`
	Chunks     int      `json:"chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_keywords",
		Description: "Report which keywords appear in a local text, Word or PDF document (case-insensitive)",
	}, s.handleFindKeywords)
}

// handleFindKeywords handles the find_keywords tool invocation.
func (s *Server) handleFindKeywords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindKeywordsInput,
) (*mcp.CallToolResult, FindKeywordsOutput, error) {
	if input.Path == "" {
		return nil, FindKeywordsOutput{}, fmt.Errorf("%w: path is required", domain.ErrInvalidInput)
	}

	keywords := domain.NewKeywordSet(input.Keywords...)
	if len(keywords) == 0 {
		var err error
		keywords, err = s.defaultKeywords()
		if err != nil {
			return nil, FindKeywordsOutput{}, err
		}
	}

	result, err := s.ports.Scan.Scan(ctx, input.Path, keywords)
	if err != nil {
		return nil, FindKeywordsOutput{}, fmt.Errorf("scanning %s: %w", input.Path, err)
	}

	found := result.Keywords
	if found == nil {
		found = []string{}
	}

	return nil, FindKeywordsOutput{
		DocumentID: result.Document.ID,
		Path:       result.Document.Path,
		MediaType:  result.Document.MediaType.String(),
		Keywords:   found,
		Count:      len(found),
		Chunks:     result.ChunkCount,
	}, nil
}

// defaultKeywords returns the configured keywords, or the built-in list
// when no settings service is wired.
func (s *Server) defaultKeywords() (domain.KeywordSet, error) {
	if s.ports.Settings == nil {
		return domain.NewKeywordSet(domain.DefaultKeywords...), nil
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return settings.Keywords, nil
}
