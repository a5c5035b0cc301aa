package services

import (
	"regexp"
	"sort"
	"strings"

	"resumatch/api/internal/models"
)

type KeywordExtractorService interface {
	ExtractTokens(text string) []string
	Coverage(resumeText, referenceText string) models.CoverageResult
}

type keywordExtractorService struct{}

func NewKeywordExtractorService() KeywordExtractorService {
	return &keywordExtractorService{}
}

// Tokens start with a letter and may continue with letters or + # . -
// so terms like "c++", "c#", "node.js" and "scikit-learn" survive.
var tokenPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z+#.\-]+`)

// ExtractTokens returns the deduplicated, sorted set of tokens longer than
// two characters found in the lowercased text.
func (k *keywordExtractorService) ExtractTokens(text string) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(matches))
	var tokens []string
	for _, m := range matches {
		if len(m) <= 2 {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tokens = append(tokens, m)
	}

	sort.Strings(tokens)
	return tokens
}

// Coverage measures how many reference tokens appear in the resume.
//
// Matching is literal substring containment, not word-boundary matching, so
// "data" also matches inside "database". That false-positive behavior is
// intentional and kept for compatibility with the scoring users already see.
func (k *keywordExtractorService) Coverage(resumeText, referenceText string) models.CoverageResult {
	all := k.ExtractTokens(referenceText)
	resume := strings.ToLower(resumeText)

	found := make([]string, 0, len(all))
	for _, token := range all {
		if strings.Contains(resume, token) {
			found = append(found, token)
		}
	}

	percentage := float64(len(found)) / float64(max(1, len(all))) * 100.0

	return models.CoverageResult{
		Percentage: percentage,
		Found:      found,
		All:        all,
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
