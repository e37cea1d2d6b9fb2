package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/evaluation"
	"gitlab.com/codearena.net/internal/core/services/user"
	"gitlab.com/codearena.net/internal/core/services/workspace"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/auth"
	"gitlab.com/codearena.net/internal/handlers/evaluations"
	"gitlab.com/codearena.net/internal/handlers/profile"
	workspacehdl "gitlab.com/codearena.net/internal/handlers/workspace"
)

type ServiceProvider struct {
	evaluationService evaluation.IEvaluationService
	workspaceService  workspace.IWorkspaceService
	userService       user.IUserService

	ggAuth    auth2.IAuthService
	localAuth auth2.ILocalAuthService
	jwt       primary.JWTService
}

func NewServiceProvider(
	evaluationService evaluation.IEvaluationService,
	workspaceService workspace.IWorkspaceService,
	userService user.IUserService,
	ggAuth auth2.IAuthService,
	localAuth auth2.ILocalAuthService,
	jwt primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		evaluationService: evaluationService,
		workspaceService:  workspaceService,
		userService:       userService,
		ggAuth:            ggAuth,
		localAuth:         localAuth,
		jwt:               jwt,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	cfg             *config.HttpConfig
	ggAuthConfig    *config.GGAuthConfig
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(cfg *config.HttpConfig, ggAuthConfig *config.GGAuthConfig, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		cfg:             cfg,
		ggAuthConfig:    ggAuthConfig,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	if s.ServiceProvider.jwt == nil {
		return errors.New("jwt service is required")
	}

	r := mux.NewRouter()
	middleware := handlers.New(s.ServiceProvider.jwt, s.logger)
	r.Use(middleware.RequestLogger)

	auth.NewHandler(s.logger).RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
		GGAuthConfig:     s.ggAuthConfig,
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTMiddleware)
	profile.NewProfileHandler(s.ServiceProvider.userService, s.logger).RegisterRoutes(api)
	workspacehdl.NewWorkspaceHandler(s.ServiceProvider.workspaceService, s.logger).RegisterRoutes(api)
	evaluations.NewEvaluationHandler(s.ServiceProvider.evaluationService, s.logger).RegisterRoutes(api)

	s.router = r
	return nil
}

// Handler exposes the router built by Init
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background; a listener failure is sent on the returned channel
func (s *Server) Start(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.cfg.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
