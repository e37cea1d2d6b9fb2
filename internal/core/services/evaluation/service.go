package evaluation

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// Request is one evaluation of a source against caller-supplied test cases.
type Request struct {
	ProblemID uuid.UUID
	Language  domain.Language
	Source    string
	TestCases []domain.TestCase
	// DryRun skips persistence; the current code slot and history stay untouched.
	DryRun bool
}

// IEvaluationService runs submissions against test cases and records the verdict
type IEvaluationService interface {
	// Evaluate runs every test case of req in order, aggregates the verdict and
	// persists it unless req.DryRun is set. A persistence failure is reported on
	// the result, not returned.
	Evaluate(ctx context.Context, session domain.Session, req Request) (*domain.EvaluationResult, error)

	// EvaluateProblem loads the problem's test cases and evaluates source against them
	EvaluateProblem(ctx context.Context, session domain.Session, problemID uuid.UUID, language domain.Language, source string) (*domain.EvaluationResult, error)
}
