package interest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shubhmangal/backend/internal/domain"
)

type fakeCountCache struct {
	mu     sync.Mutex
	counts map[string]int
	ttls   map[string]time.Duration
}

func newFakeCountCache() *fakeCountCache {
	return &fakeCountCache{
		counts: make(map[string]int),
		ttls:   make(map[string]time.Duration),
	}
}

func (c *fakeCountCache) Get(_ context.Context, uid string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.counts[uid]
	return n, ok, nil
}

func (c *fakeCountCache) Set(_ context.Context, uid string, n int, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[uid] = n
	c.ttls[uid] = ttl
	return nil
}

func (c *fakeCountCache) ttl(uid string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttls[uid]
}

func TestPollerRefreshesCacheAndStopsOnCancel(t *testing.T) {
	repo := newFakeInterestRepo()
	repo.records["a_c"] = &domain.Interest{ID: "a_c", ExpresserUID: "a", TargetUID: "c", Status: domain.InterestInterested}
	repo.records["b_c"] = &domain.Interest{ID: "b_c", ExpresserUID: "b", TargetUID: "c", Status: domain.InterestInterested}
	repo.records["c_a"] = &domain.Interest{ID: "c_a", ExpresserUID: "c", TargetUID: "a", Status: domain.InterestAccepted}

	cache := newFakeCountCache()
	interval := 10 * time.Millisecond
	p := NewPoller(repo, cache, interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// The initial refresh runs before the first tick.
	deadline := time.After(2 * time.Second)
	for {
		if n, ok, _ := cache.Get(ctx, "c"); ok && n == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("cache never populated")
		case <-time.After(time.Millisecond):
		}
	}

	if n, ok, _ := cache.Get(ctx, "a"); ok && n != 0 {
		t.Fatalf("accepted records must not count as pending, got %d", n)
	}
	if ttl := cache.ttl("c"); ttl != 2*interval {
		t.Fatalf("entries must live for two intervals, got %v", ttl)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop on context cancellation")
	}
}
