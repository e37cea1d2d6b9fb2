package evaluation

import (
	"context"
	"errors"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

const unknownExecutionError = "Unknown error"

// CaseRunner turns one test case into one result by running it through the executor.
type CaseRunner struct {
	executor secondary.CodeExecutor
	logger   primary.Logger
}

// NewCaseRunner creates a new case runner
func NewCaseRunner(executor secondary.CodeExecutor, logger primary.Logger) *CaseRunner {
	return &CaseRunner{
		executor: executor,
		logger:   logger,
	}
}

// RunCase never fails: an executor error becomes a failed result carrying the reason.
func (r *CaseRunner) RunCase(ctx context.Context, language domain.Language, source string, tc domain.TestCase) domain.TestCaseResult {
	result := domain.TestCaseResult{
		Input:    tc.Input,
		Expected: tc.ExpectedOutput,
	}

	out, err := r.executor.Execute(ctx, language, source, tc.Input)
	if err == nil && out == nil {
		err = &errs.ExecutionError{Reason: "executor returned no output"}
	}
	if err != nil {
		reason := executionReason(err)
		r.logger.Debug("Test case execution failed", "language", language, "reason", reason)
		result.ExecutionError = reason
		result.ActualOutput = domain.ExecutionErrorPrefix + reason
		return result
	}

	result.ActualOutput = out.Stdout
	result.Passed = OutputMatches(out.Stdout, tc.ExpectedOutput)
	return result
}

// OutputMatches compares outputs ignoring surrounding whitespace only.
func OutputMatches(actual, expected string) bool {
	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}

func executionReason(err error) string {
	var execErr *errs.ExecutionError
	reason := err.Error()
	if errors.As(err, &execErr) {
		reason = execErr.Error()
	}
	if strings.TrimSpace(reason) == "" {
		return unknownExecutionError
	}
	return reason
}
