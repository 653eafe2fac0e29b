package records

import "time"

// Record is the persisted result of one AI-driven résumé rewrite, owned by
// exactly one user. Created once per successful improvement call; immutable;
// never updated or deleted.
type Record struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	OriginalText       string    `json:"originalText"`
	JobDescription     string    `json:"jobDescription"`
	ImprovedContent    string    `json:"improvedContent"`
	CoverLetterSnippet string    `json:"coverLetterSnippet"`
	CreatedAt          time.Time `json:"createdAt"`
}
