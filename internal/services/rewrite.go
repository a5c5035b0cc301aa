package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

// ErrRewriteUnavailable is returned when the service was constructed without
// working credentials. Callers surface it as a user-visible message, never a
// crash.
var ErrRewriteUnavailable = errors.New("rewrite service unavailable: GEMINI_API_KEY not set")

type RewriteService interface {
	Available() bool
	Rewrite(ctx context.Context, resumeText, jobText string) (string, error)
}

type rewriteService struct {
	client *genai.Client
	model  string
}

// NewRewriteService builds the generative rewrite collaborator. Credential
// presence is checked here, once: with no API key (or a failing client
// constructor) the returned service is a typed unavailable state rather than
// an error path probed on every request.
func NewRewriteService(apiKey, model string) RewriteService {
	if apiKey == "" {
		return &rewriteService{model: model}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("⚠️  Failed to create gemini client, rewrite disabled: %v\n", err)
		return &rewriteService{model: model}
	}

	return &rewriteService{client: client, model: model}
}

func (r *rewriteService) Available() bool {
	return r.client != nil
}

// Rewrite asks the model to tailor the resume to the job description. Both
// texts are passed verbatim; the instruction block is fixed.
func (r *rewriteService) Rewrite(ctx context.Context, resumeText, jobText string) (string, error) {
	if r.client == nil {
		return "", ErrRewriteUnavailable
	}

	prompt := buildRewritePrompt(resumeText, jobText)

	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate rewrite: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func buildRewritePrompt(resumeText, jobText string) string {
	return fmt.Sprintf(`You are an expert resume editor. Rewrite the RESUME to better match the JOB DESCRIPTION.
- Keep only truthful content (no fake experience).
- Keep ATS-friendly formatting (plain text, clear section headings).
- Add missing keywords naturally.
- Quantify achievements where possible.
- Output plain text only (no markdown).

--- RESUME ---
%s

--- JOB DESCRIPTION ---
%s
`, resumeText, jobText)
}
