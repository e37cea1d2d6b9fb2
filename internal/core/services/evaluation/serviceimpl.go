package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IEvaluationService = (*EvaluationService)(nil)

// EvaluationService implements the IEvaluationService interface
type EvaluationService struct {
	runner      *CaseRunner
	problemPort secondary.ProblemPort
	codePort    secondary.CodePort
	guard       secondary.RunGuard
	logger      primary.Logger
	cfg         *config.EvaluatorConfig
}

// NewEvaluationService creates a new evaluation service. guard may be nil.
func NewEvaluationService(
	executor secondary.CodeExecutor,
	problemPort secondary.ProblemPort,
	codePort secondary.CodePort,
	guard secondary.RunGuard,
	logger primary.Logger,
	cfg *config.EvaluatorConfig,
) *EvaluationService {
	if cfg == nil {
		cfg = config.NewEvaluatorConfig()
	}
	return &EvaluationService{
		runner:      NewCaseRunner(executor, logger),
		problemPort: problemPort,
		codePort:    codePort,
		guard:       guard,
		logger:      logger,
		cfg:         cfg,
	}
}

// EvaluateProblem loads the problem's test cases and evaluates source against them
func (s *EvaluationService) EvaluateProblem(
	ctx context.Context,
	session domain.Session,
	problemID uuid.UUID,
	language domain.Language,
	source string,
) (*domain.EvaluationResult, error) {
	if err := s.validate(session, language, source); err != nil {
		return nil, err
	}

	problem, err := s.problemPort.LoadProblem(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load problem", "problemId", problemID, "error", err)
		return nil, &errs.LoadError{Resource: "problem", Err: err}
	}

	return s.Evaluate(ctx, session, Request{
		ProblemID: problemID,
		Language:  language,
		Source:    source,
		TestCases: problem.TestCases,
	})
}

// Evaluate runs every test case in order, aggregates and persists the verdict
func (s *EvaluationService) Evaluate(ctx context.Context, session domain.Session, req Request) (*domain.EvaluationResult, error) {
	if err := s.validate(session, req.Language, req.Source); err != nil {
		return nil, err
	}

	// once started a run is never cancelled
	runCtx := context.WithoutCancel(ctx)

	release, err := s.acquire(runCtx, session, req)
	if err != nil {
		return nil, err
	}
	defer release()

	s.logger.Info("Evaluating submission",
		"problemId", req.ProblemID,
		"userId", session.UserID,
		"language", req.Language,
		"testCases", len(req.TestCases))

	result := &domain.EvaluationResult{
		Results:     make([]domain.TestCaseResult, 0, len(req.TestCases)),
		NoTestCases: len(req.TestCases) == 0,
	}
	if result.NoTestCases {
		s.logger.Warn("No test cases configured", "problemId", req.ProblemID)
	}

	for _, tc := range req.TestCases {
		result.Results = append(result.Results, s.runner.RunCase(runCtx, req.Language, req.Source, tc))
	}

	result.Verdict = domain.Aggregate(result.Results)
	if req.DryRun {
		result.Persistence = domain.PersistenceOutcome{Status: domain.PersistenceStatusSkipped}
	} else {
		result.Persistence = s.persist(runCtx, session, req, result.Verdict)
	}

	s.logger.Info("Submission evaluated",
		"problemId", req.ProblemID,
		"userId", session.UserID,
		"verdict", result.Verdict,
		"passed", result.PassedCount(),
		"persistence", result.Persistence.Status)

	return result, nil
}

func (s *EvaluationService) validate(session domain.Session, language domain.Language, source string) error {
	if !session.Valid() {
		return errs.Unauthenticated
	}
	if !language.Valid() {
		return fmt.Errorf("%w: %q", errs.ErrUnsupportedLanguage, string(language))
	}
	if strings.TrimSpace(source) == "" {
		return errs.ErrEmptySource
	}
	return nil
}

// acquire takes the run guard when one is configured. A guard backend failure
// does not block the run.
func (s *EvaluationService) acquire(ctx context.Context, session domain.Session, req Request) (func(), error) {
	noop := func() {}
	if s.guard == nil {
		return noop, nil
	}

	key := fmt.Sprintf("%s:%s:%s", req.ProblemID, session.UserID, req.Language)
	release, err := s.guard.Acquire(ctx, key, s.cfg.RunLockTTL)
	if err != nil {
		if errors.Is(err, errs.ErrRunInFlight) {
			s.logger.Info("Rejected duplicate evaluation", "key", key)
			return nil, err
		}
		s.logger.Warn("Run guard unavailable, continuing without it", "key", key, "error", err)
		return noop, nil
	}
	return release, nil
}

func (s *EvaluationService) persist(ctx context.Context, session domain.Session, req Request, verdict domain.Verdict) domain.PersistenceOutcome {
	if s.cfg.PersistTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.PersistTimeout)
		defer cancel()
	}

	record := domain.NewSubmissionRecord(req.ProblemID, session.UserID, req.Language, req.Source, verdict)
	if err := s.codePort.SaveUserCode(ctx, record); err != nil {
		persistErr := &errs.PersistenceError{Err: err}
		s.logger.Error("Failed to save user code",
			"problemId", req.ProblemID,
			"userId", session.UserID,
			"error", err)
		return domain.PersistenceOutcome{
			Status:  domain.PersistenceStatusPersistFailed,
			Warning: persistErr.Error(),
			Err:     persistErr,
		}
	}

	return domain.PersistenceOutcome{Status: domain.PersistenceStatusPersisted}
}
