package domain

// ScanResult holds the outcome of scanning one document.
type ScanResult struct {
	// Document is the scanned file.
	Document Document

	// Keywords are the matched keywords, each listed once, in keyword list order.
	Keywords []string

	// ChunkCount is the number of chunks the text was split into.
	ChunkCount int
}

// Found returns true if at least one keyword matched.
func (r *ScanResult) Found() bool {
	return r != nil && len(r.Keywords) > 0
}
