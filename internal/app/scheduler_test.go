package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

type countingRefresher struct {
	calls atomic.Int32
	fail  bool
}

func (c *countingRefresher) RefreshStatus(context.Context) (settings.Status, error) {
	c.calls.Add(1)
	if c.fail {
		return settings.Status{}, errors.New("down")
	}
	return settings.Status{Open: true}, nil
}

func TestScheduler_TicksUntilStopped(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, 10*time.Millisecond, zap.NewNop())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
	time.Sleep(30 * time.Millisecond)
	after := r.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, r.calls.Load())
}

func TestScheduler_SurvivesErrors(t *testing.T) {
	r := &countingRefresher{fail: true}
	s := NewScheduler(r, 10*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx)
	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}
