package evaluation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var testSession = domain.Session{UserID: uuid.New(), UserName: "alice"}

func newService(executor *fakeExecutor, problems *fakeProblemPort, codes *fakeCodePort, guard secondary.RunGuard) *EvaluationService {
	return NewEvaluationService(executor, problems, codes, guard, logging.NewNopLogger(),
		&config.EvaluatorConfig{PersistTimeout: time.Second, RunLockTTL: time.Minute})
}

func cases(pairs ...string) []domain.TestCase {
	tcs := make([]domain.TestCase, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		tcs = append(tcs, domain.TestCase{Input: pairs[i], ExpectedOutput: pairs[i+1]})
	}
	return tcs
}

func TestEvaluateVerdicts(t *testing.T) {
	tests := []struct {
		name        string
		outputs     map[string]string
		testCases   []domain.TestCase
		wantVerdict domain.Verdict
		wantPassed  []bool
	}{
		{
			name:        "all pass",
			outputs:     map[string]string{"1": "1\n", "2": "4"},
			testCases:   cases("1", "1", "2", "4"),
			wantVerdict: domain.VerdictSolved,
			wantPassed:  []bool{true, true},
		},
		{
			name:        "partial",
			outputs:     map[string]string{"1": "1", "2": "5"},
			testCases:   cases("1", "1", "2", "4"),
			wantVerdict: domain.VerdictAttempted,
			wantPassed:  []bool{true, false},
		},
		{
			name:        "none pass",
			outputs:     map[string]string{"1": "0", "2": "0"},
			testCases:   cases("1", "1", "2", "4"),
			wantVerdict: domain.VerdictUnsolved,
			wantPassed:  []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &fakeExecutor{outputs: tt.outputs}
			codes := &fakeCodePort{}
			svc := newService(executor, &fakeProblemPort{}, codes, nil)
			problemID := uuid.New()

			result, err := svc.Evaluate(context.Background(), testSession, Request{
				ProblemID: problemID,
				Language:  domain.LanguagePython,
				Source:    "print(1)",
				TestCases: tt.testCases,
			})
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if result.Verdict != tt.wantVerdict {
				t.Fatalf("verdict = %s, want %s", result.Verdict, tt.wantVerdict)
			}
			for i, want := range tt.wantPassed {
				if result.Results[i].Passed != want {
					t.Fatalf("case %d passed = %v, want %v", i, result.Results[i].Passed, want)
				}
			}
			if result.NoTestCases {
				t.Fatalf("unexpected no test cases marker")
			}
			if len(codes.saved) != 1 {
				t.Fatalf("expected exactly one save, got %d", len(codes.saved))
			}
			saved := codes.saved[0]
			if saved.ProblemID != problemID || saved.UserID != testSession.UserID ||
				saved.Language != domain.LanguagePython || saved.Code != "print(1)" || saved.Status != tt.wantVerdict {
				t.Fatalf("unexpected saved record %+v", saved)
			}
			if result.Persistence.Status != domain.PersistenceStatusPersisted {
				t.Fatalf("expected persisted outcome, got %+v", result.Persistence)
			}
		})
	}
}

func TestEvaluatePreservesOrderAndContinuesAfterFailure(t *testing.T) {
	executor := &fakeExecutor{
		outputs:  map[string]string{"a": "A", "c": "C"},
		failures: map[string]error{"b": &errs.ExecutionError{Reason: "Time limit exceeded"}},
	}
	svc := newService(executor, &fakeProblemPort{}, &fakeCodePort{}, nil)

	result, err := svc.Evaluate(context.Background(), testSession, Request{
		ProblemID: uuid.New(),
		Language:  domain.LanguageC,
		Source:    "int main(){}",
		TestCases: cases("a", "A", "b", "B", "c", "C"),
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(executor.calls) != 3 {
		t.Fatalf("expected 3 executor calls, got %d", len(executor.calls))
	}
	for i, want := range []string{"a", "b", "c"} {
		if executor.calls[i].stdin != want {
			t.Fatalf("call %d stdin = %q, want %q", i, executor.calls[i].stdin, want)
		}
		if result.Results[i].Input != want {
			t.Fatalf("result %d input = %q, want %q", i, result.Results[i].Input, want)
		}
	}
	if result.Results[1].ExecutionError != "Time limit exceeded" ||
		result.Results[1].ActualOutput != "Error executing code: Time limit exceeded" {
		t.Fatalf("unexpected failed result %+v", result.Results[1])
	}
	if result.Verdict != domain.VerdictAttempted {
		t.Fatalf("verdict = %s, want attempted", result.Verdict)
	}
}

func TestEvaluateEmptyTestCases(t *testing.T) {
	executor := &fakeExecutor{}
	codes := &fakeCodePort{}
	svc := newService(executor, &fakeProblemPort{}, codes, nil)

	result, err := svc.Evaluate(context.Background(), testSession, Request{
		ProblemID: uuid.New(),
		Language:  domain.LanguageJava,
		Source:    "class Main {}",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(executor.calls) != 0 {
		t.Fatalf("executor must not be called, got %d calls", len(executor.calls))
	}
	if !result.NoTestCases || result.Verdict != domain.VerdictUnsolved || len(result.Results) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Results == nil {
		t.Fatalf("results must be an empty list, not nil")
	}
	if len(codes.saved) != 1 || codes.saved[0].Status != domain.VerdictUnsolved {
		t.Fatalf("expected one unsolved save, got %+v", codes.saved)
	}
	if result.Summary() != domain.NoTestCasesMessage {
		t.Fatalf("unexpected summary %q", result.Summary())
	}
}

func TestEvaluateDryRunSkipsPersistence(t *testing.T) {
	executor := &fakeExecutor{outputs: map[string]string{"1": "1"}}
	codes := &fakeCodePort{}
	svc := newService(executor, &fakeProblemPort{}, codes, nil)

	result, err := svc.Evaluate(context.Background(), testSession, Request{
		ProblemID: uuid.New(),
		Language:  domain.LanguageCpp,
		Source:    "int main(){}",
		TestCases: cases("1", "1"),
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Verdict != domain.VerdictSolved {
		t.Fatalf("verdict = %s, want solved", result.Verdict)
	}
	if len(codes.saved) != 0 {
		t.Fatalf("dry run must not save, got %+v", codes.saved)
	}
	if result.Persistence.Status != domain.PersistenceStatusSkipped || result.Persistence.Err != nil {
		t.Fatalf("unexpected persistence outcome %+v", result.Persistence)
	}
}

func TestEvaluatePersistenceFailureIsNotFatal(t *testing.T) {
	executor := &fakeExecutor{outputs: map[string]string{"1": "1"}}
	codes := &fakeCodePort{saveErr: errBackendDown}
	svc := newService(executor, &fakeProblemPort{}, codes, nil)

	result, err := svc.Evaluate(context.Background(), testSession, Request{
		ProblemID: uuid.New(),
		Language:  domain.LanguageCpp,
		Source:    "int main(){}",
		TestCases: cases("1", "1"),
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Verdict != domain.VerdictSolved {
		t.Fatalf("verdict = %s, want solved", result.Verdict)
	}
	if result.Persistence.Status != domain.PersistenceStatusPersistFailed || result.Persistence.Warning == "" {
		t.Fatalf("unexpected persistence outcome %+v", result.Persistence)
	}
	var persistErr *errs.PersistenceError
	if !errors.As(result.Persistence.Err, &persistErr) || !errors.Is(persistErr, errBackendDown) {
		t.Fatalf("expected PersistenceError wrapping the cause, got %v", result.Persistence.Err)
	}
}

func TestEvaluateIgnoresCallerCancellation(t *testing.T) {
	executor := &fakeExecutor{outputs: map[string]string{"1": "1", "2": "2"}}
	svc := newService(executor, &fakeProblemPort{}, &fakeCodePort{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Evaluate(ctx, testSession, Request{
		ProblemID: uuid.New(),
		Language:  domain.LanguagePython,
		Source:    "print(input())",
		TestCases: cases("1", "1", "2", "2"),
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Verdict != domain.VerdictSolved {
		t.Fatalf("verdict = %s, want solved", result.Verdict)
	}
	for i, ctxErr := range executor.ctxErrs {
		if ctxErr != nil {
			t.Fatalf("call %d saw cancelled context: %v", i, ctxErr)
		}
	}
}

func TestEvaluateValidation(t *testing.T) {
	svc := newService(&fakeExecutor{}, &fakeProblemPort{}, &fakeCodePort{}, nil)
	base := Request{ProblemID: uuid.New(), Language: domain.LanguageCpp, Source: "x"}

	tests := []struct {
		name    string
		session domain.Session
		mutate  func(r *Request)
		want    error
	}{
		{"no session", domain.Session{}, func(*Request) {}, errs.Unauthenticated},
		{"unknown language", testSession, func(r *Request) { r.Language = "rust" }, errs.ErrUnsupportedLanguage},
		{"blank source", testSession, func(r *Request) { r.Source = " \n\t" }, errs.ErrEmptySource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			if _, err := svc.Evaluate(context.Background(), tt.session, req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEvaluateRunGuard(t *testing.T) {
	problemID := uuid.New()
	req := Request{ProblemID: problemID, Language: domain.LanguageCpp, Source: "x", TestCases: cases("1", "1")}
	key := problemID.String() + ":" + testSession.UserID.String() + ":cpp"

	t.Run("held lock rejects the run", func(t *testing.T) {
		executor := &fakeExecutor{outputs: map[string]string{"1": "1"}}
		codes := &fakeCodePort{}
		guard := &fakeGuard{held: map[string]bool{key: true}}
		svc := newService(executor, &fakeProblemPort{}, codes, guard)

		if _, err := svc.Evaluate(context.Background(), testSession, req); !errors.Is(err, errs.ErrRunInFlight) {
			t.Fatalf("expected ErrRunInFlight, got %v", err)
		}
		if len(executor.calls) != 0 || len(codes.saved) != 0 {
			t.Fatalf("rejected run must not execute or persist")
		}
	})

	t.Run("lock is released after the run", func(t *testing.T) {
		guard := &fakeGuard{}
		svc := newService(&fakeExecutor{outputs: map[string]string{"1": "1"}}, &fakeProblemPort{}, &fakeCodePort{}, guard)

		if _, err := svc.Evaluate(context.Background(), testSession, req); err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if len(guard.released) != 1 || guard.released[0] != key || guard.held[key] {
			t.Fatalf("expected %s to be released, got %+v", key, guard.released)
		}
	})

	t.Run("guard backend failure does not block", func(t *testing.T) {
		guard := &fakeGuard{err: errBackendDown}
		svc := newService(&fakeExecutor{outputs: map[string]string{"1": "1"}}, &fakeProblemPort{}, &fakeCodePort{}, guard)

		result, err := svc.Evaluate(context.Background(), testSession, req)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if result.Verdict != domain.VerdictSolved {
			t.Fatalf("verdict = %s, want solved", result.Verdict)
		}
	})
}

func TestEvaluateProblem(t *testing.T) {
	problem := &domain.Problem{
		ID: uuid.New(),
		TestCases: []domain.TestCase{
			{Input: "x", ExpectedOutput: "X"},
			{Input: "y", ExpectedOutput: "Y", IsHidden: true},
		},
	}
	executor := &fakeExecutor{outputs: map[string]string{"x": "X", "y": "Y"}}
	codes := &fakeCodePort{}
	svc := newService(executor, &fakeProblemPort{problem: problem}, codes, nil)

	result, err := svc.EvaluateProblem(context.Background(), testSession, problem.ID, domain.LanguagePython, "print()")
	if err != nil {
		t.Fatalf("evaluate problem: %v", err)
	}
	if result.Verdict != domain.VerdictSolved || len(result.Results) != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(codes.saved) != 1 || codes.saved[0].ProblemID != problem.ID {
		t.Fatalf("unexpected saves %+v", codes.saved)
	}
}

func TestEvaluateProblemLoadFailure(t *testing.T) {
	executor := &fakeExecutor{}
	codes := &fakeCodePort{}

	t.Run("missing problem", func(t *testing.T) {
		svc := newService(executor, &fakeProblemPort{}, codes, nil)
		_, err := svc.EvaluateProblem(context.Background(), testSession, uuid.New(), domain.LanguageCpp, "x")
		var loadErr *errs.LoadError
		if !errors.As(err, &loadErr) || !errors.Is(err, errs.ErrProblemNotFound) {
			t.Fatalf("expected LoadError wrapping ErrProblemNotFound, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		svc := newService(executor, &fakeProblemPort{err: errBackendDown}, codes, nil)
		_, err := svc.EvaluateProblem(context.Background(), testSession, uuid.New(), domain.LanguageCpp, "x")
		var loadErr *errs.LoadError
		if !errors.As(err, &loadErr) || loadErr.Resource != "problem" {
			t.Fatalf("expected LoadError, got %v", err)
		}
	})

	if len(executor.calls) != 0 || len(codes.saved) != 0 {
		t.Fatalf("load failure must not execute or persist")
	}
}
