package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/prxstudio/reel/internal/relay"
	"github.com/prxstudio/reel/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeFetcher struct {
	mu     sync.Mutex
	calls  int
	status *relay.Status
	err    error
}

func (f *fakeFetcher) FetchStatus(context.Context) (*relay.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.status, f.err
}

func TestRefresh_UpdatesStore(t *testing.T) {
	store := &state.Store{}
	fetcher := &fakeFetcher{status: &relay.Status{Sent: 5}}

	refresh(context.Background(), store, fetcher, zap.NewNop())
	snap := store.Snapshot()
	require.True(t, snap.HasRelay)
	assert.Equal(t, 5, snap.Relay.Sent)

	fetcher.err = errors.New("connection refused")
	refresh(context.Background(), store, fetcher, zap.NewNop())
	refresh(context.Background(), store, fetcher, zap.NewNop())
	snap = store.Snapshot()
	assert.True(t, snap.IsOffline())
	assert.Equal(t, 5, snap.Relay.Sent, "last good status kept")
}

func TestStartPoller_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &state.Store{}
	fetcher := &fakeFetcher{status: &relay.Status{Sent: 1}}
	ctx, cancel := context.WithCancel(context.Background())

	done := StartPoller(ctx, store, fetcher, time.Hour, nil)
	require.Eventually(t, func() bool { return store.Snapshot().HasRelay }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}
