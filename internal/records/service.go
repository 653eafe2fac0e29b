package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-tailor/internal/llm"
	"resume-tailor/internal/users"
)

// Service runs the improvement pipeline: validate inputs, one provider
// exchange, fold the result into an immutable record, persist.
type Service struct {
	Repo     Repo
	UserRepo users.Repo
	LLM      llm.Client
}

// Improve performs one improvement attempt for the user. Both inputs must be
// non-empty after trimming; the stored record carries them verbatim. The
// provider call is a single exchange — a failure here is terminal for the
// attempt and the caller must re-invoke explicitly. Results are never cached:
// the same inputs may produce different text on every call.
func (s *Service) Improve(ctx context.Context, userID, resumeText, jobDescription string) (Record, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return Record{}, fmt.Errorf("%w: resume text and job description are required", ErrInvalidInput)
	}

	if _, err := s.UserRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Record{}, fmt.Errorf("%w: unknown user", ErrInvalidInput)
		}
		return Record{}, err
	}

	result, err := s.LLM.Improve(ctx, llm.ImproveInput{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:                 uuid.NewString(),
		UserID:             userID,
		OriginalText:       resumeText,
		JobDescription:     jobDescription,
		ImprovedContent:    result.ImprovedResume,
		CoverLetterSnippet: result.CoverLetter,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// Get returns a record by ID for the owning user.
func (s *Service) Get(ctx context.Context, userID, recordID string) (Record, error) {
	if userID == "" || recordID == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, recordID)
}

// List returns the user's records, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Record, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}
