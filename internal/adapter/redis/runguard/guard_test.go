package runguard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/static/errs"
)

func newGuard(t *testing.T) (*miniredis.Miniredis, *RunGuard) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRunGuard(client, logging.NewNopLogger())
}

func TestAcquireRejectsSecondHolder(t *testing.T) {
	mr, guard := newGuard(t)
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "p:u:cpp", time.Minute)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !mr.Exists("evaluation:lock:p:u:cpp") {
		t.Fatalf("expected lock key")
	}

	if _, err := guard.Acquire(ctx, "p:u:cpp", time.Minute); !errors.Is(err, errs.ErrRunInFlight) {
		t.Fatalf("expected ErrRunInFlight, got %v", err)
	}

	// other languages are independent slots
	otherRelease, err := guard.Acquire(ctx, "p:u:py", time.Minute)
	if err != nil {
		t.Fatalf("acquire other slot: %v", err)
	}
	otherRelease()

	release()
	if mr.Exists("evaluation:lock:p:u:cpp") {
		t.Fatalf("expected lock to be released")
	}

	release, err = guard.Acquire(ctx, "p:u:cpp", time.Minute)
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	release()
}

func TestReleaseKeepsForeignLock(t *testing.T) {
	mr, guard := newGuard(t)
	ctx := context.Background()

	release, err := guard.Acquire(ctx, "k", time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	// lock expired and was taken by another run
	mr.FastForward(2 * time.Second)
	if err := mr.Set("evaluation:lock:k", "someone-else"); err != nil {
		t.Fatalf("set: %v", err)
	}

	release()
	got, err := mr.Get("evaluation:lock:k")
	if err != nil || got != "someone-else" {
		t.Fatalf("foreign lock was touched: %q, %v", got, err)
	}
}

func TestAcquireBackendFailure(t *testing.T) {
	mr, guard := newGuard(t)
	mr.Close()

	_, err := guard.Acquire(context.Background(), "k", time.Second)
	if err == nil || errors.Is(err, errs.ErrRunInFlight) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
