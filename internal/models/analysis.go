package models

import (
	"time"

	"github.com/google/uuid"
)

// CoverageResult reports how many of the reference keywords appear in the
// resume. Found is always a subset of All; both are sorted for stable output.
type CoverageResult struct {
	Percentage float64  `json:"percentage"`
	Found      []string `json:"found"`
	All        []string `json:"all"`
}

// AuditFinding is one advisory issue from the structural checklist. Findings
// never block scoring.
type AuditFinding struct {
	Issue string `json:"issue"`
}

// MatchReport is the full result of scoring one resume against one job
// description.
type MatchReport struct {
	SimilarityScore float64        `json:"similarity_score"`
	Coverage        CoverageResult `json:"coverage"`
	Findings        []AuditFinding `json:"findings"`
	Suggestions     []string       `json:"suggestions"`
}

// Analysis carries the normalized texts of one scoring action for the
// lifetime of the session. The rewrite action consumes these texts verbatim
// and never re-derives them from raw upload state.
type Analysis struct {
	ID         uuid.UUID   `json:"id"`
	ResumeText string      `json:"-"`
	JobText    string      `json:"-"`
	Report     MatchReport `json:"report"`
	CreatedAt  time.Time   `json:"created_at"`
}
