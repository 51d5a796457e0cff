package services

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driving"
	"github.com/custodia-labs/keyscan/internal/logger"
	"github.com/custodia-labs/keyscan/internal/postprocessors/chunker"
	"github.com/custodia-labs/keyscan/internal/postprocessors/matcher"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService extracts a document's text, splits it into chunks and
// matches keywords in every chunk on a bounded worker pool.
type ScanService struct {
	dispatcher *Dispatcher
	chunker    *chunker.Chunker
	workers    int
}

// NewScanService creates a scan service from validated settings.
// Settings.Keywords is ignored; keywords are passed to each Scan call.
func NewScanService(dispatcher *Dispatcher, settings domain.Settings) (*ScanService, error) {
	if dispatcher == nil {
		return nil, fmt.Errorf("%w: dispatcher is nil", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	c, err := chunker.New(
		chunker.WithChunkSize(settings.ChunkSize),
		chunker.WithOverlap(settings.ChunkOverlap),
	)
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	workers := settings.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	return &ScanService{
		dispatcher: dispatcher,
		chunker:    c,
		workers:    workers,
	}, nil
}

// Workers returns the worker pool size.
func (s *ScanService) Workers() int {
	return s.workers
}

// Scan reports which keywords appear in the file at path.
// Keywords are normalised again here so callers may pass them in any case.
func (s *ScanService) Scan(ctx context.Context, path string, keywords domain.KeywordSet) (*domain.ScanResult, error) {
	keywords = domain.NewKeywordSet(keywords...)

	doc := domain.Document{
		ID:        uuid.New().String(),
		Path:      path,
		MediaType: domain.MediaTypeFromPath(path),
	}

	logger.Section("Scan " + doc.ID)
	logger.Debug("[%s] Path: %q", doc.ID, path)
	result := &domain.ScanResult{Document: doc, Keywords: []string{}}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		logger.Warn("[%s] No regular file at %q", doc.ID, path)
		return result, fmt.Errorf("%w: %s", domain.ErrPathNotFound, path)
	}

	text, err := s.dispatcher.Extract(ctx, doc)
	if err != nil {
		return result, err
	}

	chunks := slices.Collect(s.chunker.Chunks(*text))
	result.ChunkCount = len(chunks)
	logger.Debug("[%s] Split %d bytes into %d chunks (size %d, overlap %d)",
		doc.ID, len(text.Text), len(chunks), s.chunker.ChunkSize(), s.chunker.Overlap())

	if len(keywords) == 0 || len(chunks) == 0 {
		return result, nil
	}
	if len(chunks) > 1 && s.chunker.Overlap() < keywords.MaxLen()-1 {
		logger.Debug("[%s] Overlap %d is shorter than the longest keyword; matches across chunk boundaries are missed",
			doc.ID, s.chunker.Overlap())
	}

	result.Keywords = s.matchChunks(chunks, keywords)
	logger.Info("[%s] Found %d of %d keywords", doc.ID, len(result.Keywords), len(keywords))

	return result, nil
}

// matchChunks fans the chunks out to the worker pool and unions the
// per-chunk matches. Each task writes only its own slot of results.
func (s *ScanService) matchChunks(chunks []domain.Chunk, keywords domain.KeywordSet) []string {
	results := make([][]string, len(chunks))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			results[i] = matcher.Match(chunk.Content, keywords)
			if len(results[i]) > 0 {
				logger.Debug("[%s] Chunk %d matched %v", chunk.DocumentID, chunk.Position, results[i])
			}
			return nil
		})
	}
	// Tasks never fail.
	_ = g.Wait()

	return matcher.Union(keywords, results...)
}
