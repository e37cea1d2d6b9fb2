package evaluation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type execCall struct {
	language domain.Language
	source   string
	stdin    string
}

// fakeExecutor answers by stdin: outputs[stdin] or failures[stdin].
type fakeExecutor struct {
	mu       sync.Mutex
	outputs  map[string]string
	failures map[string]error
	calls    []execCall
	ctxErrs  []error
}

func (f *fakeExecutor) Execute(ctx context.Context, language domain.Language, source string, stdin string) (*secondary.ExecutionOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, execCall{language: language, source: source, stdin: stdin})
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if err, ok := f.failures[stdin]; ok {
		return nil, err
	}
	out, ok := f.outputs[stdin]
	if !ok {
		return nil, nil
	}
	return &secondary.ExecutionOutput{Stdout: out}, nil
}

type fakeProblemPort struct {
	problem *domain.Problem
	err     error
}

func (f *fakeProblemPort) LoadProblem(_ context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.problem == nil || f.problem.ID != problemID {
		return nil, errs.ErrProblemNotFound
	}
	return f.problem, nil
}

type fakeCodePort struct {
	saved   []*domain.SubmissionRecord
	saveErr error
}

func (f *fakeCodePort) LoadUserCode(context.Context, uuid.UUID, uuid.UUID, domain.Language) (*domain.UserCode, error) {
	return nil, nil
}

func (f *fakeCodePort) SaveUserCode(_ context.Context, record *domain.SubmissionRecord) error {
	f.saved = append(f.saved, record)
	return f.saveErr
}

func (f *fakeCodePort) ListSubmissions(context.Context, uuid.UUID) ([]*domain.SubmissionRecord, error) {
	return f.saved, nil
}

type fakeGuard struct {
	held     map[string]bool
	err      error
	released []string
}

func (f *fakeGuard) Acquire(_ context.Context, key string, _ time.Duration) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.held == nil {
		f.held = map[string]bool{}
	}
	if f.held[key] {
		return nil, errs.ErrRunInFlight
	}
	f.held[key] = true
	return func() {
		delete(f.held, key)
		f.released = append(f.released, key)
	}, nil
}

var errBackendDown = errors.New("connection refused")
