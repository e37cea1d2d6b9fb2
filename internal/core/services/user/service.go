package user

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type IUserService interface {
	// Profile returns the user behind session
	Profile(ctx context.Context, session domain.Session) (*domain.Users, error)
}
