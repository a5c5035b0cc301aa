package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentFormat string

const (
	FormatPlain   DocumentFormat = "plain"
	FormatDocx    DocumentFormat = "docx"
	FormatPDF     DocumentFormat = "pdf"
	FormatUnknown DocumentFormat = "unknown"
)

// Document is the session-scoped record of one upload: the extracted text
// plus the format inferred from the filename. It lives in memory for the
// session TTL and is never persisted.
type Document struct {
	ID               uuid.UUID      `json:"id"`
	OriginalFileName string         `json:"original_filename"`
	Format           DocumentFormat `json:"format"`
	Text             string         `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
}
