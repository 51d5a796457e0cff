// Package chunker provides a fixed-size text chunker.
package chunker

import (
	"errors"
	"iter"
	"unicode/utf8"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = domain.DefaultChunkSize

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = domain.DefaultChunkOverlap

var (
	// ErrInvalidChunkSize is returned for a chunk size below one.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInvalidOverlap is returned for a negative overlap or one that is
	// not smaller than the chunk size.
	ErrInvalidOverlap = errors.New("overlap must be non-negative and smaller than the chunk size")
)

// Chunker splits text into chunks of at most chunkSize characters,
// where a character is a Unicode code point. Adjacent chunks share
// overlap characters; with zero overlap the chunks partition the text.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		c.chunkSize = size
	}
}

// WithOverlap sets the overlap between chunks in characters.
// Keywords up to overlap+1 characters long can no longer be missed at a
// chunk boundary.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		c.overlap = overlap
	}
}

// New creates a chunker. Invalid sizes fail fast rather than being clamped.
func New(opts ...Option) (*Chunker, error) {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if c.overlap < 0 || c.overlap >= c.chunkSize {
		return nil, ErrInvalidOverlap
	}

	return c, nil
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Chunks returns a lazy sequence over the chunks of text, in order.
// The sequence may be ranged over any number of times.
func (c *Chunker) Chunks(text domain.ExtractedText) iter.Seq[domain.Chunk] {
	return func(yield func(domain.Chunk) bool) {
		content := text.Text
		step := c.chunkSize - c.overlap

		start, position := 0, 0
		for start < len(content) {
			end := advance(content, start, c.chunkSize)

			chunk := domain.Chunk{
				DocumentID: text.Document.ID,
				Content:    content[start:end],
				Position:   position,
				Start:      start,
			}
			if !yield(chunk) {
				return
			}

			// The remainder is already covered by this chunk.
			if end == len(content) {
				return
			}

			start = advance(content, start, step)
			position++
		}
	}
}

// advance returns the byte offset n characters after from.
func advance(s string, from, n int) int {
	i := from
	for k := 0; k < n && i < len(s); k++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
