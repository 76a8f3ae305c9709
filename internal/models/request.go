package models

type UploadedDocument struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"original_name"`
	CandidateName string `json:"candidate_name"`
	FileType      string `json:"file_type"`
}

type UploadResponse struct {
	Message   string             `json:"message"`
	Documents []UploadedDocument `json:"documents"`
	Skipped   []SkippedFile      `json:"skipped,omitempty"`
}

// SkippedFile reports an upload the engine could not turn into a usable
// candidate (unsupported extension, unreadable file, empty extracted text).
type SkippedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type MatchRequest struct {
	JobDescription string   `json:"job_description" validate:"required"`
	DocumentIDs    []string `json:"document_ids" validate:"omitempty,dive,uuid"`
}

type ManualCandidate struct {
	Name       string `json:"name"`
	ResumeText string `json:"resume_text" validate:"required"`
}

type ManualMatchRequest struct {
	JobDescription string            `json:"job_description" validate:"required"`
	Candidates     []ManualCandidate `json:"candidates" validate:"required,min=1,dive"`
}

type MatchResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalCandidates int              `json:"total_candidates_considered"`
}
