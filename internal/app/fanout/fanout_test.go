package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/app/fanout"
)

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	got := fanout.Run(t.Context(), 4, []string(nil), func(context.Context, string) (int, error) {
		t.Error("fn called for empty input")
		return 0, nil
	})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRun_OrderAndPartialFailure(t *testing.T) {
	t.Parallel()

	ids := []string{"todo-1", "missing", "todo-3", "todo-4"}
	got := fanout.Run(t.Context(), 2, ids, func(_ context.Context, id string) (string, error) {
		if id == "missing" {
			return "", errors.New("not found")
		}
		return "loaded " + id, nil
	})

	require.Len(t, got, 4)
	assert.Equal(t, "loaded todo-1", got[0].Value)
	assert.Error(t, got[1].Err)
	assert.Equal(t, "loaded todo-3", got[2].Value)
	assert.Equal(t, "loaded todo-4", got[3].Value)
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantPeak   int32
	}{
		{"two workers", 2, 2},
		{"zero clamps to one", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inFlight, peak atomic.Int32
			items := make([]int, 10)
			fanout.Run(t.Context(), tt.maxWorkers, items, func(context.Context, int) (struct{}, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return struct{}{}, nil
			})

			assert.LessOrEqual(t, peak.Load(), tt.wantPeak)
		})
	}
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	started := make(chan struct{})
	release := make(chan struct{})

	var calls atomic.Int32
	done := make(chan []fanout.Result[int])
	go func() {
		done <- fanout.Run(ctx, 1, []int{1, 2, 3}, func(context.Context, int) (int, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return 1, nil
		})
	}()

	<-started
	cancel()
	// Let the waiting items observe the cancellation before the slot frees.
	time.Sleep(20 * time.Millisecond)
	close(release)
	got := <-done

	canceled := 0
	for _, r := range got {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 2, canceled)
}
