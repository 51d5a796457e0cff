package domain

// Document is a single file selected for scanning.
// It lives for the duration of one run and is never persisted.
type Document struct {
	// ID is a per-run identifier used to correlate chunks and log lines.
	ID string

	// Path is the location of the file on disk.
	Path string

	// MediaType is inferred from the file extension.
	MediaType MediaType
}

// ExtractedText is the text content of a Document, lower-cased once
// at extraction time. It must not be modified after creation.
type ExtractedText struct {
	// Document is the source of the text.
	Document Document

	// Text is the lower-cased content.
	Text string
}

// Chunk is a contiguous, non-overlapping (unless overlap is configured)
// slice of ExtractedText. Chunks are scanned independently.
type Chunk struct {
	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Start is the byte offset of Content within the extracted text.
	Start int
}
