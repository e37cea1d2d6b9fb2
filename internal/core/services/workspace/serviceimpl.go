package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IWorkspaceService = (*WorkspaceService)(nil)

type WorkspaceService struct {
	problemPort secondary.ProblemPort
	codePort    secondary.CodePort
	logger      primary.Logger
}

func NewWorkspaceService(problemPort secondary.ProblemPort, codePort secondary.CodePort, logger primary.Logger) *WorkspaceService {
	return &WorkspaceService{
		problemPort: problemPort,
		codePort:    codePort,
		logger:      logger,
	}
}

func (s *WorkspaceService) Open(
	ctx context.Context,
	session domain.Session,
	problemID uuid.UUID,
	language domain.Language,
) (*Workspace, error) {
	if !session.Valid() {
		return nil, errs.Unauthenticated
	}
	if !language.Valid() {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, string(language))
	}

	problem, err := s.problemPort.LoadProblem(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load problem", "problemId", problemID, "error", err)
		return nil, &errs.LoadError{Resource: "problem", Err: err}
	}

	saved, err := s.codePort.LoadUserCode(ctx, problemID, session.UserID, language)
	if err != nil {
		s.logger.Error("Failed to load user code",
			"problemId", problemID,
			"userId", session.UserID,
			"language", language,
			"error", err)
		return nil, &errs.LoadError{Resource: "user code", Err: err}
	}

	spec := language.Spec()
	ws := &Workspace{
		ProblemID:     problem.ID,
		Title:         problem.Title,
		Description:   problem.Description,
		Language:      spec,
		Code:          spec.Template,
		Status:        domain.VerdictUnsolved,
		TestCaseCount: len(problem.TestCases),
		Samples:       problem.VisibleTestCases(),
	}
	if saved != nil {
		ws.Code = saved.Code
		ws.Status = saved.Status
		ws.Saved = true
	}

	return ws, nil
}

func (s *WorkspaceService) Submissions(ctx context.Context, problemID uuid.UUID) ([]*domain.SubmissionRecord, error) {
	records, err := s.codePort.ListSubmissions(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to list submissions", "problemId", problemID, "error", err)
		return nil, &errs.LoadError{Resource: "submissions", Err: err}
	}
	return records, nil
}

func (s *WorkspaceService) Languages() []domain.LanguageSpec {
	return domain.LanguageSpecs()
}
