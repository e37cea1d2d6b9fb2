// Package coderepository stores the current code slot of each user and the
// submission history in PostgreSQL.
package coderepository

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
	querybuilder "gitlab.com/codearena.net/internal/utils"
)

var _ secondary.CodePort = (*CodeRepository)(nil)

const userCodesTable = "user_codes"

// CodeRepository implements the CodePort interface with PostgreSQL
type CodeRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewCodeRepository creates a new PostgreSQL code repository
func NewCodeRepository(db *sqlx.DB, logger primary.Logger, schema string) *CodeRepository {
	return &CodeRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// LoadUserCode returns the saved code for (problem, user, language) or nil
func (r *CodeRepository) LoadUserCode(
	ctx context.Context,
	problemID, userID uuid.UUID,
	language domain.Language,
) (*domain.UserCode, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select("problem_id", "user_id", "language", "code", "status", "updated_at").
		From(userCodesTable).
		Where("problem_id = ?", problemID).
		And("user_id = ?", userID).
		And("language = ?", language).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var code domain.UserCode
	if err := r.db.GetContext(ctx, &code, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get user code",
			"problemId", problemID,
			"userId", userID,
			"language", language,
			"error", err)
		return nil, fmt.Errorf("failed to get user code: %w", err)
	}

	return &code, nil
}

// SaveUserCode overwrites the current code slot and appends the submission in one transaction
func (r *CodeRepository) SaveUserCode(ctx context.Context, record *domain.SubmissionRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upsert, upsertArgs := querybuilder.NewQueryBuilder(r.schema).
		Insert("problem_id", "user_id", "language", "code", "status", "updated_at").
		Into(userCodesTable).
		Values(record.ProblemID, record.UserID, record.Language, record.Code, record.Status, record.CreatedAt).
		OnConflict("problem_id", "user_id", "language").
		DoUpdateExcluded("code", "status", "updated_at").
		Build()

	if _, err = tx.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, upsert), upsertArgs...); err != nil {
		r.logger.Error("Failed to upsert user code", "problemId", record.ProblemID, "userId", record.UserID, "error", err)
		return fmt.Errorf("failed to upsert user code: %w", err)
	}

	subTbl := domain.GetSubmissionTable()
	insert, insertArgs := querybuilder.NewQueryBuilder(r.schema).
		Insert(subTbl.ID, subTbl.ProblemID, subTbl.UserID, subTbl.Language, subTbl.Code, subTbl.Status, subTbl.CreatedAt).
		Into(subTbl.TableName()).
		Values(record.ID, record.ProblemID, record.UserID, record.Language, record.Code, record.Status, record.CreatedAt).
		Build()

	if _, err = tx.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, insert), insertArgs...); err != nil {
		r.logger.Error("Failed to insert submission", "problemId", record.ProblemID, "userId", record.UserID, "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	if err = tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListSubmissions returns the submission history of a problem, newest first
func (r *CodeRepository) ListSubmissions(ctx context.Context, problemID uuid.UUID) ([]*domain.SubmissionRecord, error) {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			"s."+subTbl.ID, "s."+subTbl.ProblemID, "s."+subTbl.UserID,
			"COALESCE(u.user_name, '') AS user_name",
			"s."+subTbl.Language, "s."+subTbl.Code, "s."+subTbl.Status, "s."+subTbl.CreatedAt,
		).
		From(subTbl.TableName()+" s").
		Join(querybuilder.JoinTypeLeft, domain.GetUserTable().GetTableName(), "u", "u.id = s.user_id").
		Where("s.problem_id = ?", problemID).
		OrderBy("s."+subTbl.CreatedAt, false).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	records := make([]*domain.SubmissionRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		r.logger.Error("Failed to list submissions", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return records, nil
}
