package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

type ProblemPort interface {
	// LoadProblem returns the problem with its test cases in order, or
	// errs.ErrProblemNotFound.
	LoadProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error)
}
