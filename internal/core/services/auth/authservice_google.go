package auth

import (
	"context"
	"errors"
	"strings"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/global/logger"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	Config      *config.GGAuthConfig
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService, Config *config.GGAuthConfig) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		Config:      Config,
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

func (g googleAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.GoogleID == nil {
		return "", errs.InvalidCredentials
	}

	if users.AuthProvider != string(domain.ProviderGoogle) {
		return "", errs.InvalidCredentials
	}

	if users.Email == nil || *users.Email == "" {
		return "", errs.EmailRequired
	}

	if g.Config.AllowedDomain != "" && !strings.HasSuffix(*users.Email, "@"+g.Config.AllowedDomain) {
		return "", errs.EmailDomainNotAllowed
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *users.GoogleID)
	if err != nil {
		return "", err
	}

	if usr != nil {
		return generateToken(ctx, g.jwtProvider, usr)
	}
	users.PasswordHash = nil
	users.UserName = strings.Split(*users.Email, "@")[0]
	users.AuthProvider = string(domain.ProviderGoogle)
	err = g.userPort.Create(ctx, users)
	if err != nil {
		if !errors.Is(err, errs.UserNameTaken) {
			return "", errs.FailedToCreateUser
		}
		// the local part is taken, fall back to the full address
		users.UserName = *users.Email
		if err := g.userPort.Create(ctx, users); err != nil {
			logger.Error("Failed to create google user", "email", *users.Email, "error", err)
			return "", errs.FailedToCreateUser
		}
	}

	return generateToken(ctx, g.jwtProvider, users)
}
