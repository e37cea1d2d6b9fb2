package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codearena.net/internal/adapter/crypto"
	"gitlab.com/codearena.net/internal/adapter/executor"
	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/adapter/postgres/coderepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codearena.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codearena.net/internal/adapter/redis/problemcache"
	"gitlab.com/codearena.net/internal/adapter/redis/runguard"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	auth2 "gitlab.com/codearena.net/internal/core/services/auth"
	"gitlab.com/codearena.net/internal/core/services/evaluation"
	"gitlab.com/codearena.net/internal/core/services/user"
	"gitlab.com/codearena.net/internal/core/services/workspace"
	logger2 "gitlab.com/codearena.net/internal/global/logger"
	http2 "gitlab.com/codearena.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sysCfg := config.NewSystemConfig()

	logger := logging.NewZapLogger(sysCfg.LogConfig.Level)
	defer logger.Sync()
	logger2.SetLogger(logger)
	logger.Info("Starting evaluation service", "debug", sysCfg.DebugMode)

	db, err := setupDatabase(ctx, sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// cache and run guard degrade to no-ops
		logger.Warn("Redis unavailable", "addr", sysCfg.RedisConfig.Url, "error", err)
	}

	// SECONDARY PORTS
	var problemPort secondary.ProblemPort = problemrepository.NewProblemRepository(db, logger, sysCfg.PostgresConfig.Schema)
	if sysCfg.ProblemCacheConfig.Enabled {
		problemPort = problemcache.NewProblemCache(redisClient, problemPort, sysCfg.ProblemCacheConfig.TTL, logger)
	}
	codePort := coderepository.NewCodeRepository(db, logger, sysCfg.PostgresConfig.Schema)
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	codeExecutor := executor.NewClient(sysCfg.ExecutorConfig, logger)

	var guard secondary.RunGuard
	if sysCfg.EvaluatorConfig.Dedupe {
		guard = runguard.NewRunGuard(redisClient, logger)
	}

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	evaluationSvc := evaluation.NewEvaluationService(codeExecutor, problemPort, codePort, guard, logger, sysCfg.EvaluatorConfig)
	workspaceSvc := workspace.NewWorkspaceService(problemPort, codePort, logger)
	userSvc := user.NewUserService(userPort, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(evaluationSvc, workspaceSvc, userSvc, ggAuth, localAuth, jwtProvider)

	//server
	httpServer := http2.NewServer(sysCfg.HttpConfig, sysCfg.GGAuthConfig, *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}
	serveErr := httpServer.Start(context.WithoutCancel(ctx))

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.Error("Http server stopped", "error", err)
		}
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), sysCfg.HttpConfig.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
