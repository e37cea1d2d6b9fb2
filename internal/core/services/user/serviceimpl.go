package user

import (
	"context"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IUserService = (*UserService)(nil)

type UserService struct {
	userPort secondary.UserPort
	logger   primary.Logger
}

func NewUserService(userPort secondary.UserPort, logger primary.Logger) *UserService {
	return &UserService{
		userPort: userPort,
		logger:   logger,
	}
}

func (s *UserService) Profile(ctx context.Context, session domain.Session) (*domain.Users, error) {
	if !session.Valid() {
		return nil, errs.Unauthenticated
	}

	usr, err := s.userPort.Get(ctx, session.UserID)
	if err != nil {
		s.logger.Error("Failed to load profile", "userId", session.UserID, "error", err)
		return nil, &errs.LoadError{Resource: "profile", Err: err}
	}
	return usr, nil
}
