package models

type UploadResponse struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	Format       string `json:"format"`
	TextLength   int    `json:"text_length"`
}

type ScoreRequest struct {
	ResumeDocumentID string `json:"resume_document_id"`
	ResumeText       string `json:"resume_text"`
	JobDescription   string `json:"job_description"`
}

type ScoreResponse struct {
	ID     string      `json:"id"`
	Report MatchReport `json:"report"`
}

type RewriteRequest struct {
	AnalysisID string `json:"analysis_id"`
}

type RewriteResponse struct {
	RevisedResume string `json:"revised_resume"`
}

type EstimateRequest struct {
	BaselineRate *float64 `json:"baseline_rate,omitempty"`
	CGPA         float64  `json:"cgpa"`
	GRE          *float64 `json:"gre,omitempty"`
	IELTS        *float64 `json:"ielts,omitempty"`
	DocumentID   string   `json:"document_id,omitempty"`
	DocumentText string   `json:"document_text,omitempty"`
}

type EstimateResponse struct {
	Probability     float64        `json:"probability"`
	DocumentQuality float64        `json:"document_quality"`
	Findings        []AuditFinding `json:"findings"`
}
