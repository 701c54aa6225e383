package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/relay"
	"github.com/prxstudio/reel/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store from
// the relay's status endpoint. Consecutive failures back off exponentially.
// It returns immediately; the goroutine exits when ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, fetcher relay.StatusFetcher, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, fetcher, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
	return done
}

func refresh(ctx context.Context, store *state.Store, fetcher relay.StatusFetcher, logger *zap.Logger) {
	status, err := fetcher.FetchStatus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		logger.Debug("relay status poll failed", zap.Error(err))
		return
	}
	store.Update(status, nil)
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	d := base << failures
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}
