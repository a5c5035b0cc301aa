package services

import (
	"fmt"
	"regexp"
	"strings"

	"resumatch/api/internal/models"
)

type AuditorService interface {
	StructuralFindings(text string) []models.AuditFinding
	Suggestions(resumeText string, coverage models.CoverageResult) []string
	QualityScore(text string) float64
}

type auditorService struct{}

func NewAuditorService() AuditorService {
	return &auditorService{}
}

var (
	tenDigitPhone   = regexp.MustCompile(`\d{10}`)
	formattedPhone  = regexp.MustCompile(`\(\d{3}\)\s*\d{3}-\d{4}`)
	educationHint   = regexp.MustCompile(`(?i)education|bachelor|master|university`)
	experienceHint  = regexp.MustCompile(`(?i)experience|work history|employment`)
	numericEvidence = regexp.MustCompile(`\b(\d+%|\d{2,})\b`)
)

type structuralCheck struct {
	failed  func(text string) bool
	message string
}

// The checklist order is fixed so output is deterministic; every check runs
// independently and all failures are reported together.
var structuralChecks = []structuralCheck{
	{
		failed:  func(t string) bool { return len(t) < 500 },
		message: "Resume seems short. Add detail and measurable achievements.",
	},
	{
		failed:  func(t string) bool { return strings.Contains(t, "\t") },
		message: "Avoid TAB characters; some ATS parsers misread complex formatting.",
	},
	{
		failed:  func(t string) bool { return !strings.Contains(t, "@") },
		message: "Missing contact email.",
	},
	{
		failed: func(t string) bool {
			return !tenDigitPhone.MatchString(t) && !formattedPhone.MatchString(t)
		},
		message: "Missing phone number.",
	},
	{
		failed:  func(t string) bool { return !educationHint.MatchString(t) },
		message: "Education section not detected (use heading 'Education').",
	},
	{
		failed:  func(t string) bool { return !experienceHint.MatchString(t) },
		message: "Experience section not detected (use heading 'Experience').",
	},
}

// StructuralFindings runs the fixed checklist against a normalized resume and
// returns every applicable finding. Findings are advisory and never block
// scoring.
func (a *auditorService) StructuralFindings(text string) []models.AuditFinding {
	findings := make([]models.AuditFinding, 0, len(structuralChecks))
	for _, check := range structuralChecks {
		if check.failed(text) {
			findings = append(findings, models.AuditFinding{Issue: check.message})
		}
	}
	return findings
}

// QualityScore is the document-quality signal for the admissions blender:
// the fraction of structural checks the document passes, in [0,1].
func (a *auditorService) QualityScore(text string) float64 {
	passed := 0
	for _, check := range structuralChecks {
		if !check.failed(text) {
			passed++
		}
	}
	return float64(passed) / float64(len(structuralChecks))
}

// Suggestions builds improvement tips from the coverage result and the resume
// text. The generic tailoring tip is always appended last.
func (a *auditorService) Suggestions(resumeText string, coverage models.CoverageResult) []string {
	var suggestions []string

	missing := missingKeywords(coverage, 15)
	if len(missing) > 0 {
		examples := missing
		if len(examples) > 10 {
			examples = examples[:10]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Add relevant keywords from the job description (missing examples: %s).",
			strings.Join(examples, ", ")))
	}

	if !numericEvidence.MatchString(resumeText) {
		suggestions = append(suggestions,
			"Quantify achievements (e.g., 'Improved accuracy by 12%', 'Processed 1M+ rows').")
	}

	if strings.Count(resumeText, "•")+strings.Count(resumeText, "- ") < 3 {
		suggestions = append(suggestions,
			"Use concise bullet points with action verbs (Built, Led, Automated, Reduced).")
	}

	suggestions = append(suggestions,
		"Tailor the top 5 bullets to the role's must-have skills and responsibilities.")

	return suggestions
}

// missingKeywords returns up to limit reference tokens absent from the
// resume, in sorted order (coverage.All is already sorted).
func missingKeywords(coverage models.CoverageResult, limit int) []string {
	found := make(map[string]struct{}, len(coverage.Found))
	for _, token := range coverage.Found {
		found[token] = struct{}{}
	}

	var missing []string
	for _, token := range coverage.All {
		if _, ok := found[token]; ok {
			continue
		}
		missing = append(missing, token)
		if len(missing) == limit {
			break
		}
	}
	return missing
}
