package posts

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// StaleAfter is how long a fetched result is served without refetching.
	StaleAfter = 5 * time.Minute

	// Retries is how many times a failed fetch is repeated before the
	// fallback is served.
	Retries = 3

	defaultRetryDelay = 250 * time.Millisecond
	fetchBudget       = 30 * time.Second
)

// Feed caches the joined post list. Concurrent loads share one fetch.
// Only remote results are cached; a fallback is served once and the next
// Get tries the network again.
type Feed struct {
	fetcher Fetcher
	bus     *bus.Bus
	logger  *zap.Logger
	group   singleflight.Group

	mu        sync.Mutex
	cached    *Result
	fetchedAt time.Time
	now       func() time.Time

	// retryDelay doubles after each failed attempt.
	retryDelay time.Duration
}

func NewFeed(f Fetcher, b *bus.Bus, logger *zap.Logger) *Feed {
	return &Feed{fetcher: f, bus: b, logger: logger, now: time.Now, retryDelay: defaultRetryDelay}
}

// Get returns the cached result while fresh. refresh forces a refetch.
//
// The shared fetch runs detached from ctx: one caller giving up must not
// cut short the fetch other callers are waiting on.
func (f *Feed) Get(ctx context.Context, refresh bool) Result {
	if !refresh {
		f.mu.Lock()
		if f.cached != nil && f.now().Sub(f.fetchedAt) < StaleAfter {
			r := *f.cached
			f.mu.Unlock()
			return r
		}
		f.mu.Unlock()
	}

	v, _, _ := f.group.Do("posts", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchBudget)
		defer cancel()

		r, ok := f.fetch(fetchCtx)
		if ok {
			f.mu.Lock()
			f.cached = &r
			f.fetchedAt = f.now()
			f.mu.Unlock()
		}
		f.logger.Info("posts loaded", zap.Int("count", len(r.Posts)), zap.String("source", string(r.Source)))
		f.bus.Emit(bus.KindPostsLoaded, r)
		return r, nil
	})
	return v.(Result)
}

// fetch tries the remote up to Retries+1 times and reports whether the
// result came from it.
func (f *Feed) fetch(ctx context.Context) (Result, bool) {
	delay := f.retryDelay
	var lastErr error
	for attempt := 0; attempt <= Retries; attempt++ {
		if attempt > 0 {
			if !sleep(ctx, delay) {
				lastErr = ctx.Err()
				break
			}
			delay *= 2
		}
		posts, err := f.fetcher.FetchJoined(ctx)
		if err == nil {
			return Result{Posts: posts, Source: SourceRemote}, true
		}
		lastErr = err
		f.logger.Debug("posts fetch attempt failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	f.logger.Warn("posts fetch failed, serving fallback", zap.Int("attempts", Retries+1), zap.Error(lastErr))
	return Fallback(), false
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
