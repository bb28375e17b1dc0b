package interest

import (
	"context"
	"log"
	"time"

	"github.com/shubhmangal/backend/internal/repository"
)

// Poller periodically refreshes the pending-interest count cache. It
// replaces per-client re-fetch loops with one scheduled server-side task
// that stops when its context is cancelled.
type Poller struct {
	interestRepo repository.InterestRepository
	cache        CountCache
	interval     time.Duration
}

func NewPoller(interestRepo repository.InterestRepository, cache CountCache, interval time.Duration) *Poller {
	return &Poller{
		interestRepo: interestRepo,
		cache:        cache,
		interval:     interval,
	}
}

// Run blocks until ctx is cancelled, refreshing once per interval. A failed
// refresh is logged and retried on the next tick; stale cache entries age
// out by TTL.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	counts, err := p.interestRepo.PendingCounts(ctx)
	if err != nil {
		log.Printf("pending-count refresh failed: %v", err)
		return
	}

	// Entries live for two intervals so a user whose count drops to zero
	// reads zero after the stale entry expires.
	ttl := 2 * p.interval
	for uid, n := range counts {
		if err := p.cache.Set(ctx, uid, n, ttl); err != nil {
			log.Printf("pending-count cache write failed for %s: %v", uid, err)
			return
		}
	}
}
