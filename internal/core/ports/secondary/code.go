package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// CodePort stores the current code slot per (problem, user, language) and
// the submission history.
type CodePort interface {
	// LoadUserCode returns nil, nil when nothing was saved yet
	LoadUserCode(ctx context.Context, problemID, userID uuid.UUID, language domain.Language) (*domain.UserCode, error)

	// SaveUserCode overwrites the current slot and appends record to history atomically
	SaveUserCode(ctx context.Context, record *domain.SubmissionRecord) error

	// ListSubmissions returns the history of a problem, newest first
	ListSubmissions(ctx context.Context, problemID uuid.UUID) ([]*domain.SubmissionRecord, error)
}
