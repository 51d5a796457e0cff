package domain

// Default scan settings.
const (
	// DefaultChunkSize is the number of characters per chunk.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap keeps chunks disjoint. A positive overlap lets
	// keywords straddling a boundary match, at the cost of rescanning text.
	DefaultChunkOverlap = 0

	// DefaultWorkers of zero means one worker per CPU.
	DefaultWorkers = 0
)

// Settings configures a scan.
type Settings struct {
	// Keywords are the keywords to search for.
	Keywords KeywordSet

	// ChunkSize is the number of characters per chunk.
	ChunkSize int

	// ChunkOverlap is the number of characters shared by adjacent chunks.
	ChunkOverlap int

	// Workers bounds the number of chunks matched concurrently.
	Workers int
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Keywords:     NewKeywordSet(DefaultKeywords...),
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		Workers:      DefaultWorkers,
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.ChunkSize <= 0 {
		return ErrInvalidInput
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return ErrInvalidInput
	}
	if s.Workers < 0 {
		return ErrInvalidInput
	}
	return nil
}
