package services

import (
	"bytes"
	_ "embed"
	"math"
	"regexp"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw []byte

// English stopword set, loaded once from the embedded list (read-only after).
var stopwords map[string]struct{}

func init() {
	lines := bytes.Split(stopwordsRaw, []byte("\n"))
	stopwords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := string(bytes.TrimSpace(line))
		if word != "" {
			stopwords[word] = struct{}{}
		}
	}
}

type SimilarityService interface {
	Score(a, b string) float64
}

type similarityService struct{}

func NewSimilarityService() SimilarityService {
	return &similarityService{}
}

var wordPattern = regexp.MustCompile(`\w\w+`)

// Score computes the TF-IDF cosine similarity between two documents,
// scaled to [0,100].
//
// The corpus is exactly the two documents. Terms are lowercased words of two
// or more characters with stopwords removed, plus the bigrams formed from the
// surviving words. Term weights use the smoothed idf ln((1+n)/(1+df))+1 and
// each vector is l2-normalized before the dot product. Degenerate input
// (empty vocabulary, zero-norm vector) yields 0.0 rather than an error.
func (s *similarityService) Score(a, b string) float64 {
	termsA := extractTerms(a)
	termsB := extractTerms(b)

	tfA := termCounts(termsA)
	tfB := termCounts(termsB)

	// Document frequency over the two-document corpus.
	vocab := make(map[string]int, len(tfA)+len(tfB))
	for term := range tfA {
		vocab[term]++
	}
	for term := range tfB {
		vocab[term]++
	}
	if len(vocab) == 0 {
		return 0.0
	}

	const nDocs = 2.0
	var dot, normA, normB float64
	for term, df := range vocab {
		idf := math.Log((1+nDocs)/(1+float64(df))) + 1

		wa := float64(tfA[term]) * idf
		wb := float64(tfB[term]) * idf

		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return sim * 100.0
}

// extractTerms tokenizes one document into its vector-space terms: unigrams
// with stopwords removed, followed by bigrams of the remaining words.
func extractTerms(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	kept := words[:0]
	for _, w := range words {
		if _, stop := stopwords[w]; !stop {
			kept = append(kept, w)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

func termCounts(terms []string) map[string]int {
	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}
	return tf
}
