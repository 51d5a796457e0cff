package domain

import (
	"path/filepath"
	"strings"
)

// MediaType enumerates the document formats keyscan can extract.
type MediaType int

// Supported media types.
const (
	// MediaTypeUnknown is any format without an extractor.
	MediaTypeUnknown MediaType = iota

	// MediaTypePlainText is UTF-8 text (.txt).
	MediaTypePlainText

	// MediaTypeDOCX is an Office Open XML word processing document (.docx).
	MediaTypeDOCX

	// MediaTypePDF is a Portable Document Format file (.pdf).
	MediaTypePDF
)

var extMediaTypes = map[string]MediaType{
	".txt":  MediaTypePlainText,
	".docx": MediaTypeDOCX,
	".pdf":  MediaTypePDF,
}

// MediaTypeFromPath infers the media type from the file extension.
// The file content is never inspected.
func MediaTypeFromPath(path string) MediaType {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := extMediaTypes[ext]; ok {
		return mt
	}
	return MediaTypeUnknown
}

// IsSupported returns true if an extractor exists for this media type.
func (m MediaType) IsSupported() bool {
	switch m {
	case MediaTypePlainText, MediaTypeDOCX, MediaTypePDF:
		return true
	default:
		return false
	}
}

// MIME returns the MIME type string, or an empty string when unknown.
func (m MediaType) MIME() string {
	switch m {
	case MediaTypePlainText:
		return "text/plain"
	case MediaTypeDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case MediaTypePDF:
		return "application/pdf"
	default:
		return ""
	}
}

// String returns a short name for the media type.
func (m MediaType) String() string {
	switch m {
	case MediaTypePlainText:
		return "txt"
	case MediaTypeDOCX:
		return "docx"
	case MediaTypePDF:
		return "pdf"
	default:
		return "unknown"
	}
}
