package problemcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type fakeStore struct {
	problems map[uuid.UUID]*domain.Problem
	calls    int
}

func (f *fakeStore) LoadProblem(_ context.Context, problemID uuid.UUID) (*domain.Problem, error) {
	f.calls++
	problem, ok := f.problems[problemID]
	if !ok {
		return nil, errs.ErrProblemNotFound
	}
	return problem, nil
}

func setup(t *testing.T) (*miniredis.Miniredis, *fakeStore, *ProblemCache, *domain.Problem) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	problem := &domain.Problem{
		ID:    uuid.New(),
		Title: "Echo",
		TestCases: []domain.TestCase{
			{ID: uuid.New(), Input: "a", ExpectedOutput: "a"},
			{ID: uuid.New(), Input: "b", ExpectedOutput: "b", IsHidden: true},
		},
	}
	store := &fakeStore{problems: map[uuid.UUID]*domain.Problem{problem.ID: problem}}
	return mr, store, NewProblemCache(client, store, time.Minute, logging.NewNopLogger()), problem
}

func TestLoadProblemReadThrough(t *testing.T) {
	mr, store, cache, problem := setup(t)
	ctx := context.Background()

	first, err := cache.LoadProblem(ctx, problem.ID)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := cache.LoadProblem(ctx, problem.ID)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}

	if store.calls != 1 {
		t.Fatalf("expected one store call, got %d", store.calls)
	}
	if !mr.Exists(problemKey(problem.ID)) {
		t.Fatalf("expected problem to be cached")
	}
	if ttl := mr.TTL(problemKey(problem.ID)); ttl != time.Minute {
		t.Fatalf("unexpected ttl %v", ttl)
	}
	if first.Title != second.Title || len(second.TestCases) != 2 || !second.TestCases[1].IsHidden {
		t.Fatalf("cached problem differs: %+v", second)
	}
	if second.TestCases[0].Input != "a" {
		t.Fatalf("test case order not preserved: %+v", second.TestCases)
	}
}

func TestLoadProblemNotFoundIsNotCached(t *testing.T) {
	mr, _, cache, _ := setup(t)
	missing := uuid.New()

	if _, err := cache.LoadProblem(context.Background(), missing); !errors.Is(err, errs.ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
	if mr.Exists(problemKey(missing)) {
		t.Fatalf("missing problem must not be cached")
	}
}

func TestLoadProblemFallsThroughWhenRedisDown(t *testing.T) {
	mr, store, cache, problem := setup(t)
	mr.Close()

	got, err := cache.LoadProblem(context.Background(), problem.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ID != problem.ID || store.calls != 1 {
		t.Fatalf("expected store result, got %+v (calls=%d)", got, store.calls)
	}
}

func TestLoadProblemReloadsAfterTTL(t *testing.T) {
	mr, store, cache, problem := setup(t)
	ctx := context.Background()

	if _, err := cache.LoadProblem(ctx, problem.ID); err != nil {
		t.Fatalf("load: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if mr.Exists(problemKey(problem.ID)) {
		t.Fatalf("expected cached problem to expire")
	}
	if _, err := cache.LoadProblem(ctx, problem.ID); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("expected reload from store, got %d calls", store.calls)
	}
}
