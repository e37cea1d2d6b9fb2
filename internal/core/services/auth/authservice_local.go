package auth

import (
	"context"
	"errors"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/global/logger"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ ILocalAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) ILocalAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (g localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

// Login expects the plain password in users.PasswordHash
func (g localAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.UserName == "" || users.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}

	usr, err := g.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	valid, err := g.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *users.PasswordHash)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return generateToken(ctx, g.jwtProvider, usr)
}

func (g localAuthService) Register(ctx context.Context, userName, password string, email *string) (string, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return "", errs.InvalidRegistration
	}

	hash, err := g.jwtProvider.EncryptPassword(ctx, password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return "", errs.InternalError
	}

	user := &domain.Users{
		UserName:     userName,
		PasswordHash: &hash,
		Email:        email,
		AuthProvider: string(domain.ProviderLocal),
	}
	if err := g.userPort.Create(ctx, user); err != nil {
		if errors.Is(err, errs.UserNameTaken) {
			return "", err
		}
		return "", errs.FailedToCreateUser
	}

	logger.Info("Registered user", "userId", user.ID, "userName", user.UserName)
	return generateToken(ctx, g.jwtProvider, user)
}
