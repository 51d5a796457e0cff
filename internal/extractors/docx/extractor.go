// Package docx extracts text from Office Open XML word processing documents.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/keyscan/internal/core/domain"
	"github.com/custodia-labs/keyscan/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

const documentPart = "word/document.xml"

// errMissingDocument is returned for archives without a document body.
var errMissingDocument = errors.New("archive has no " + documentPart)

var (
	headerPart = regexp.MustCompile(`^word/header[0-9]*\.xml$`)
	footerPart = regexp.MustCompile(`^word/footer[0-9]*\.xml$`)
)

// Extractor handles DOCX documents.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// MediaType returns the media type this extractor handles.
func (e *Extractor) MediaType() domain.MediaType {
	return domain.MediaTypeDOCX
}

// Extract returns the text of the document body, preceded by page headers
// and followed by page footers. Formatting, images and embedded objects
// are ignored.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return "", domain.NewExtractionError(path, domain.MediaTypeDOCX, err)
	}
	defer reader.Close()

	text, err := extractText(&reader.Reader)
	if err != nil {
		return "", domain.NewExtractionError(path, domain.MediaTypeDOCX, err)
	}
	return text, nil
}

// extractText walks the archive parts in reading order.
func extractText(reader *zip.Reader) (string, error) {
	var body *zip.File
	var headers, footers []*zip.File

	for _, file := range reader.File {
		switch {
		case file.Name == documentPart:
			body = file
		case headerPart.MatchString(file.Name):
			headers = append(headers, file)
		case footerPart.MatchString(file.Name):
			footers = append(footers, file)
		}
	}

	if body == nil {
		return "", errMissingDocument
	}

	sortByName(headers)
	sortByName(footers)

	parts := make([]*zip.File, 0, len(headers)+len(footers)+1)
	parts = append(parts, headers...)
	parts = append(parts, body)
	parts = append(parts, footers...)

	var sections []string
	for _, part := range parts {
		text, err := readPart(part)
		if err != nil {
			return "", fmt.Errorf("%s: %w", part.Name, err)
		}
		if text != "" {
			sections = append(sections, text)
		}
	}

	return strings.Join(sections, "\n"), nil
}

func sortByName(files []*zip.File) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
}

func readPart(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return parseXML(rc)
}

// parseXML collects the text runs of a WordprocessingML part.
// Paragraphs and line breaks become newlines, tabs become tab characters.
func parseXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var result strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				result.WriteByte('\t')
			case "br", "cr":
				result.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				result.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				result.Write(t)
			}
		}
	}

	return strings.TrimSpace(result.String()), nil
}
