package synthesis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflight_CoalescesConcurrentCalls(t *testing.T) {
	var f Inflight[string]
	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := f.Do(context.Background(), "k", func(ctx context.Context) (string, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return "done", nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// let every goroutine join the flight before releasing it
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "done", r)
	}
}

func TestInflight_SequentialCallsRunAgain(t *testing.T) {
	var f Inflight[int]
	n := 0
	for i := 0; i < 3; i++ {
		v, shared, err := f.Do(context.Background(), "k", func(ctx context.Context) (int, error) {
			n++
			return n, nil
		})
		require.NoError(t, err)
		assert.False(t, shared)
		assert.Equal(t, i+1, v)
	}
}

func TestInflight_LastCallerCancellationCancelsFlight(t *testing.T) {
	var f Inflight[int]
	ctx, cancel := context.WithCancel(context.Background())
	observed := make(chan error, 1)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, _, err := f.Do(ctx, "k", func(ctx context.Context) (int, error) {
		<-ctx.Done()
		observed <- ctx.Err()
		return 0, ctx.Err()
	})
	assert.True(t, errors.Is(err, context.Canceled))

	select {
	case ferr := <-observed:
		assert.True(t, errors.Is(ferr, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("flight was not cancelled")
	}
}

func TestInflight_OneCallerCancellingKeepsFlightForOthers(t *testing.T) {
	var f Inflight[string]
	release := make(chan struct{})
	started := make(chan struct{})

	leaverCtx, leave := context.WithCancel(context.Background())
	leaverDone := make(chan error, 1)
	go func() {
		_, _, err := f.Do(leaverCtx, "k", func(ctx context.Context) (string, error) {
			close(started)
			select {
			case <-release:
				return "done", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})
		leaverDone <- err
	}()
	<-started

	stayerDone := make(chan string, 1)
	go func() {
		v, _, err := f.Do(context.Background(), "k", func(ctx context.Context) (string, error) {
			return "second execution", nil
		})
		assert.NoError(t, err)
		stayerDone <- v
	}()

	time.Sleep(50 * time.Millisecond)
	leave()
	assert.True(t, errors.Is(<-leaverDone, context.Canceled))

	close(release)
	assert.Equal(t, "done", <-stayerDone)
}

func TestInflight_JoinAfterAbandonedFlightStartsFresh(t *testing.T) {
	var f Inflight[string]
	started := make(chan struct{})
	unblock := make(chan struct{})
	defer close(unblock)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, _, err := f.Do(firstCtx, "k", func(ctx context.Context) (string, error) {
			close(started)
			// ignore cancellation so the abandoned call is still running below
			<-unblock
			return "stale", ctx.Err()
		})
		firstDone <- err
	}()
	<-started

	cancelFirst()
	require.True(t, errors.Is(<-firstDone, context.Canceled))

	v, shared, err := f.Do(context.Background(), "k", func(ctx context.Context) (string, error) {
		return "fresh", ctx.Err()
	})
	require.NoError(t, err)
	assert.False(t, shared)
	assert.Equal(t, "fresh", v)
}

func TestKey(t *testing.T) {
	k1, err := Key("u1", map[string]int{"a": 1}, "img")
	require.NoError(t, err)
	k2, _ := Key("u1", map[string]int{"a": 1}, "img")
	k3, _ := Key("u2", map[string]int{"a": 1}, "img")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)

	_, err = Key(make(chan int))
	assert.Error(t, err)
}
