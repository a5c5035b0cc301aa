package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/charmap"

	"resumatch/api/internal/models"
)

// ExtractorService converts uploaded bytes into best-effort plain text. It
// never fails: any parse error for a structured format falls back to naive
// byte decoding, and nil input yields the empty string.
type ExtractorService interface {
	Extract(data []byte, filename string) (string, models.DocumentFormat)
	Formats() []models.DocumentFormat
}

type formatHandler func(data []byte) (string, error)

type extractorService struct {
	handlers map[models.DocumentFormat]formatHandler
}

// NewExtractorService builds an extractor with the full handler set
// {pdf, docx, plain}. The available formats are a configuration fact fixed
// at construction, not a runtime branch.
func NewExtractorService() ExtractorService {
	s := &extractorService{}
	s.handlers = map[models.DocumentFormat]formatHandler{
		models.FormatPDF:   extractPDFText,
		models.FormatDocx:  extractDocxText,
		models.FormatPlain: func(data []byte) (string, error) { return decodeFallback(data), nil },
	}
	return s
}

func (s *extractorService) Formats() []models.DocumentFormat {
	formats := make([]models.DocumentFormat, 0, len(s.handlers))
	for f := range s.handlers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Extract returns the plain text of an upload and the format inferred from
// the filename extension. Unknown extensions and any handler failure go
// through the decode fallback.
func (s *extractorService) Extract(data []byte, filename string) (string, models.DocumentFormat) {
	if len(data) == 0 {
		return "", inferFormat(filename)
	}

	format := inferFormat(filename)
	if handler, ok := s.handlers[format]; ok {
		if text, err := handler(data); err == nil {
			return text, format
		}
	}

	return decodeFallback(data), format
}

func inferFormat(filename string) models.DocumentFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return models.FormatPDF
	case ".docx":
		return models.FormatDocx
	case ".txt":
		return models.FormatPlain
	default:
		return models.FormatUnknown
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

// extractDocxText parses a .docx upload. The docx library reads from a file
// path, so the bytes go through a temp file that is removed regardless of
// outcome.
func extractDocxText(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	doc, err := docx.ReadDocxFile(tmp.Name())
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := xmlTag.ReplaceAllString(content, " ")
	text = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	).Replace(text)

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in docx")
	}

	return text, nil
}

// decodeFallback decodes bytes as UTF-8 when valid, otherwise as ISO-8859-1,
// which maps every byte and therefore never fails.
func decodeFallback(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
