package chunker

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/custodia-labs/keyscan/internal/core/domain"
)

func collect(c *Chunker, text string) []domain.Chunk {
	var chunks []domain.Chunk
	for chunk := range c.Chunks(domain.ExtractedText{Document: domain.Document{ID: "doc-1"}, Text: text}) {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c, err := New()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ChunkSize() != 1000 {
			t.Errorf("expected chunkSize 1000, got %d", c.ChunkSize())
		}
		if c.Overlap() != 0 {
			t.Errorf("expected overlap 0, got %d", c.Overlap())
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		c, err := New(WithChunkSize(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ChunkSize() != 500 {
			t.Errorf("expected chunkSize 500, got %d", c.ChunkSize())
		}
	})

	t.Run("custom overlap", func(t *testing.T) {
		c, err := New(WithChunkSize(100), WithOverlap(10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Overlap() != 10 {
			t.Errorf("expected overlap 10, got %d", c.Overlap())
		}
	})

	invalid := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero chunk size", []Option{WithChunkSize(0)}, ErrInvalidChunkSize},
		{"negative chunk size", []Option{WithChunkSize(-3)}, ErrInvalidChunkSize},
		{"negative overlap", []Option{WithOverlap(-1)}, ErrInvalidOverlap},
		{"overlap equals chunk size", []Option{WithChunkSize(10), WithOverlap(10)}, ErrInvalidOverlap},
		{"overlap exceeds chunk size", []Option{WithChunkSize(10), WithOverlap(15)}, ErrInvalidOverlap},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if c != nil {
				t.Error("expected nil chunker on error")
			}
		})
	}
}

func TestChunks_EmptyText(t *testing.T) {
	c, _ := New()
	if chunks := collect(c, ""); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty text, got %d", len(chunks))
	}
}

func TestChunks_FixedSize(t *testing.T) {
	c, _ := New(WithChunkSize(4))
	chunks := collect(c, "abcdefghij")

	want := []string{"abcd", "efgh", "ij"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.Content != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], chunk.Content)
		}
		if chunk.Position != i {
			t.Errorf("chunk %d: expected position %d, got %d", i, i, chunk.Position)
		}
		if chunk.Start != i*4 {
			t.Errorf("chunk %d: expected start %d, got %d", i, i*4, chunk.Start)
		}
		if chunk.DocumentID != "doc-1" {
			t.Errorf("chunk %d: expected document ID doc-1, got %q", i, chunk.DocumentID)
		}
	}
}

func TestChunks_ExactMultiple(t *testing.T) {
	c, _ := New(WithChunkSize(5))
	chunks := collect(c, "abcdefghij")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[1].Content != "fghij" {
		t.Errorf("expected last chunk fghij, got %q", chunks[1].Content)
	}
}

func TestChunks_CountsCharactersNotBytes(t *testing.T) {
	c, _ := New(WithChunkSize(2))
	chunks := collect(c, "héllo wörld")

	for _, chunk := range chunks {
		if !utf8.ValidString(chunk.Content) {
			t.Errorf("chunk split a multi-byte character: %q", chunk.Content)
		}
		if n := utf8.RuneCountInString(chunk.Content); n > 2 {
			t.Errorf("chunk has %d characters, want at most 2", n)
		}
	}
	if chunks[0].Content != "hé" {
		t.Errorf("expected first chunk hé, got %q", chunks[0].Content)
	}
}

func TestChunks_Overlap(t *testing.T) {
	c, _ := New(WithChunkSize(4), WithOverlap(2))
	chunks := collect(c, "abcdefgh")

	want := []string{"abcd", "cdef", "efgh"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.Content != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], chunk.Content)
		}
	}
}

func TestChunks_Restartable(t *testing.T) {
	c, _ := New(WithChunkSize(3))
	seq := c.Chunks(domain.ExtractedText{Text: "restartable"})

	var first, second []string
	for chunk := range seq {
		first = append(first, chunk.Content)
	}
	for chunk := range seq {
		second = append(second, chunk.Content)
	}

	if strings.Join(first, "|") != strings.Join(second, "|") {
		t.Errorf("sequence not restartable: %v vs %v", first, second)
	}
}

func TestChunks_EarlyStop(t *testing.T) {
	c, _ := New(WithChunkSize(1))
	count := 0
	for range c.Chunks(domain.ExtractedText{Text: "abcdef"}) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 chunks, got %d", count)
	}
}

// Concatenating the chunks must reconstruct the input for any size.
// contents returns the chunk contents of text for chunks of size characters.
func contents(text string, size int) ([]string, error) {
	c, err := New(WithChunkSize(size))
	if err != nil {
		return nil, err
	}

	var parts []string
	for chunk := range c.Chunks(domain.ExtractedText{Text: text}) {
		parts = append(parts, chunk.Content)
	}
	return parts, nil
}

func TestChunks_ReconstructsInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("abc XYZ éü東京\n\t")

	for i := 0; i < 200; i++ {
		length := rng.Intn(300)
		runes := make([]rune, length)
		for j := range runes {
			runes[j] = alphabet[rng.Intn(len(alphabet))]
		}
		text := string(runes)
		size := rng.Intn(50) + 1

		parts, err := contents(text, size)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Join(parts, ""); got != text {
			t.Fatalf("size %d: reconstruction mismatch: %q vs %q", size, got, text)
		}
		for j, part := range parts {
			n := utf8.RuneCountInString(part)
			if n > size || n == 0 {
				t.Fatalf("size %d: part %d has %d characters", size, j, n)
			}
			if j < len(parts)-1 && n != size {
				t.Fatalf("size %d: non-final part %d has %d characters", size, j, n)
			}
		}
	}
}

func TestChunks_InvalidSize(t *testing.T) {
	_, err := contents("text", 0)
	if !errors.Is(err, ErrInvalidChunkSize) {
		t.Errorf("expected ErrInvalidChunkSize, got %v", err)
	}
}
