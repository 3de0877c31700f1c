package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetAfterSet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "matches:t1", []string{"m1"})

	v, ok := store.Get(context.Background(), "matches:t1")
	if !ok {
		t.Fatalf("expected hit immediately after set")
	}
	if got, _ := v.([]string); len(got) != 1 || got[0] != "m1" {
		t.Fatalf("unexpected cached value: %v", v)
	}
}

func TestStore_LazyExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "k", "v")

	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after TTL elapsed")
	}
	// The expired entry was evicted by the read, so an eager sweep
	// has nothing left to remove.
	if got := store.Len(); got != 0 {
		t.Fatalf("expected entry evicted on read, have %d entries", got)
	}
	store.ClearExpired(context.Background())
	if got := store.Len(); got != 0 {
		t.Fatalf("clearExpired after eviction should be a no-op, have %d entries", got)
	}
}

func TestStore_ClearExpired_SweepsOnlyStaleEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	store.Set(context.Background(), "stale", 1)

	time.Sleep(40 * time.Millisecond)
	store.Set(context.Background(), "fresh", 2)

	store.ClearExpired(context.Background())

	if _, ok := store.Get(context.Background(), "stale"); ok {
		t.Fatalf("stale entry should have been swept")
	}
	if _, ok := store.Get(context.Background(), "fresh"); !ok {
		t.Fatalf("fresh entry should survive the sweep")
	}
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "a", 1)
	store.Set(context.Background(), "b", 2)

	store.Clear(context.Background())

	if got := store.Len(); got != 0 {
		t.Fatalf("expected empty store, have %d entries", got)
	}
}

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
