package models

type CandidateSource string

const (
	SourceFileUpload  CandidateSource = "file_upload"
	SourceManualEntry CandidateSource = "manual_entry"
)

// Candidate is the unit of input to the matching pipeline. ID is opaque to the
// core; the handler layer assigns one (uuid) when the caller does not.
type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Source     CandidateSource `json:"source"`
	ResumeText string          `json:"resume_text"`
}

// ScoredCandidate pairs a candidate with its cosine similarity against the job
// description. Rank is 1-based and assigned only after the full ordering.
type ScoredCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
	Rank      int       `json:"rank"`
}

// Recommendation is one entry of the final response. Summary holds either the
// generated rationale or the "summary unavailable" sentinel.
type Recommendation struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SimilarityScore float64 `json:"similarity_score"`
	AISummary       string  `json:"ai_summary"`
}
