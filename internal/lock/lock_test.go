package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTestLocker(t *testing.T) (*Locker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	locker, err := Open(Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Failed to open locker: %v", err)
	}
	t.Cleanup(func() { _ = locker.Close() })

	return locker, mr
}

func TestTryLock(t *testing.T) {
	locker, _ := setupTestLocker(t)
	ctx := context.Background()

	ok, err := locker.TryLock(ctx, "2026-03-10", time.Minute)
	if err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected to acquire the lock")
	}
}

func TestTryLock_Held(t *testing.T) {
	locker, _ := setupTestLocker(t)
	ctx := context.Background()

	if _, err := locker.TryLock(ctx, "2026-03-10", time.Minute); err != nil {
		t.Fatalf("First TryLock failed: %v", err)
	}

	ok, err := locker.TryLock(ctx, "2026-03-10", time.Minute)
	if err != nil {
		t.Fatalf("Second TryLock failed: %v", err)
	}
	if ok {
		t.Error("Expected the held lock to refuse a second acquire")
	}

	// A different date is a different lock.
	ok, err = locker.TryLock(ctx, "2026-03-11", time.Minute)
	if err != nil {
		t.Fatalf("TryLock on other date failed: %v", err)
	}
	if !ok {
		t.Error("Expected the lock for another date to be free")
	}
}

func TestUnlock(t *testing.T) {
	locker, _ := setupTestLocker(t)
	ctx := context.Background()

	if _, err := locker.TryLock(ctx, "2026-03-10", time.Minute); err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}
	if err := locker.Unlock(ctx, "2026-03-10"); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	ok, err := locker.TryLock(ctx, "2026-03-10", time.Minute)
	if err != nil {
		t.Fatalf("TryLock after unlock failed: %v", err)
	}
	if !ok {
		t.Error("Expected the lock to be free after Unlock")
	}
}

func TestTryLock_TTLExpiry(t *testing.T) {
	locker, mr := setupTestLocker(t)
	ctx := context.Background()

	if _, err := locker.TryLock(ctx, "2026-03-10", time.Minute); err != nil {
		t.Fatalf("TryLock failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	ok, err := locker.TryLock(ctx, "2026-03-10", time.Minute)
	if err != nil {
		t.Fatalf("TryLock after expiry failed: %v", err)
	}
	if !ok {
		t.Error("Expected the lock to expire with its TTL")
	}
}
