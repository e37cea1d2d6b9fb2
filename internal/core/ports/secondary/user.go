package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error
	// Get returns errs.ErrUserNotFound when no user has the id
	Get(ctx context.Context, id uuid.UUID) (*domain.Users, error)
	// GetByUserName and GetByGoogleID return nil, nil when nothing matches
	GetByUserName(ctx context.Context, userName string) (*domain.Users, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error)
}
