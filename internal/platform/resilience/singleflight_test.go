package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("bootstrap-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "team-id", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got, _ := v.(string); got != "team-id" {
				t.Errorf("unexpected value: %v", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_Do_SharesError(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("boom")

	const workers = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("failing-key", func() (any, error) {
				time.Sleep(10 * time.Millisecond)
				return nil, wantErr
			})
			if !errors.Is(err, wantErr) {
				t.Errorf("expected shared error, got %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()
}

func TestSingleFlight_Do_IndependentKeys(t *testing.T) {
	var g SingleFlight

	v1, err, _ := g.Do("a", func() (any, error) { return 1, nil })
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	v2, err, _ := g.Do("b", func() (any, error) { return 2, nil })
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if v1 == v2 {
		t.Fatalf("keys should not share results: %v vs %v", v1, v2)
	}
}
