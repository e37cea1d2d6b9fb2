// Package problemrepository reads problems and their test cases from PostgreSQL
package problemrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
	querybuilder "gitlab.com/codearena.net/internal/utils"
)

const (
	problemsTable  = "problems"
	testCasesTable = "test_cases"
)

var _ secondary.ProblemPort = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemPort interface with PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger, schema string) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// LoadProblem retrieves a problem and its test cases ordered by position
func (r *ProblemRepository) LoadProblem(ctx context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select("id", "title", "description", "created_at").
		From(problemsTable).
		Where("id = ?", problemID).
		Build()

	var problem domain.Problem
	if err := r.db.GetContext(ctx, &problem, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrProblemNotFound
		}
		r.logger.Error("Failed to get problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	casesQuery, casesArgs := querybuilder.NewQueryBuilder(r.schema).
		Select("id", "input", "expected_output", "is_hidden").
		From(testCasesTable).
		Where("problem_id = ?", problemID).
		OrderBy("position", true).
		Build()

	testCases := make([]domain.TestCase, 0)
	if err := r.db.SelectContext(ctx, &testCases, sqlx.Rebind(sqlx.DOLLAR, casesQuery), casesArgs...); err != nil {
		r.logger.Error("Failed to get test cases", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}
	problem.TestCases = testCases

	return &problem, nil
}
