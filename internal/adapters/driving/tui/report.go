package tui

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/keyscan/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/keyscan/internal/core/domain"
)

// Report messages.
const (
	FoundHeader       = "Found Keywords:"
	NoKeywordsMessage = "No keywords found."
	InvalidPath       = "Invalid file path. Please ensure the file exists."
	UnsupportedPrefix = "Unsupported file type: "
	ReadErrorPrefix   = "Error reading the file: "
)

// Reporter renders scan outcomes for a writer.
type Reporter struct {
	out    io.Writer
	styles *styles.Styles
}

// NewReporter creates a reporter whose colours follow out's capabilities.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		styles: styles.NewStylesWithRenderer(lipgloss.NewRenderer(out), nil),
	}
}

// Write renders the outcome of a scan to the reporter's writer.
func (r *Reporter) Write(result *domain.ScanResult, err error) error {
	_, werr := io.WriteString(r.out, r.Render(result, err))
	return werr
}

// Render formats the outcome of a scan. Errors take precedence over the
// result.
func (r *Reporter) Render(result *domain.ScanResult, err error) string {
	if err != nil {
		style := r.styles.Error
		if errors.Is(err, domain.ErrUnsupportedType) {
			style = r.styles.Warning
		}
		return style.Render(Describe(result, err)) + "\n"
	}
	if result == nil || !result.Found() {
		return r.styles.Muted.Render(NoKeywordsMessage) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.styles.Title.Render(FoundHeader))
	b.WriteString("\n")
	for _, kw := range result.Keywords {
		b.WriteString(r.styles.Keyword.Render("- " + kw))
		b.WriteString("\n")
	}
	return b.String()
}

// Describe maps a scan error to its user-facing message.
func Describe(result *domain.ScanResult, err error) string {
	var extErr *domain.ExtractionError
	switch {
	case errors.Is(err, domain.ErrPathNotFound):
		return InvalidPath
	case errors.Is(err, domain.ErrUnsupportedType):
		return UnsupportedPrefix + extension(result)
	case errors.As(err, &extErr) && extErr.Err != nil:
		return ReadErrorPrefix + extErr.Err.Error()
	case errors.Is(err, domain.ErrExtractionFailed):
		return ReadErrorPrefix + err.Error()
	default:
		return "Error: " + err.Error()
	}
}

func extension(result *domain.ScanResult) string {
	if result == nil {
		return "unknown"
	}
	ext := strings.ToLower(filepath.Ext(result.Document.Path))
	if ext == "" {
		return "none"
	}
	return ext
}
