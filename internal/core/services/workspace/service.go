package workspace

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// Workspace is the editor state restored when a user opens a problem
type Workspace struct {
	ProblemID     uuid.UUID           `json:"problem_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Language      domain.LanguageSpec `json:"language"`
	Code          string              `json:"code"`
	Status        domain.Verdict      `json:"status"`
	Saved         bool                `json:"saved"`
	TestCaseCount int                 `json:"test_case_count"`
	Samples       []domain.TestCase   `json:"samples"`
}

type IWorkspaceService interface {
	// Open restores the saved code for the session's user or falls back to
	// the language template with status unsolved.
	Open(ctx context.Context, session domain.Session, problemID uuid.UUID, language domain.Language) (*Workspace, error)
	Submissions(ctx context.Context, problemID uuid.UUID) ([]*domain.SubmissionRecord, error)
	Languages() []domain.LanguageSpec
}
