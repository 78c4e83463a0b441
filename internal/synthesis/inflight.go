package synthesis

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// Inflight coalesces identical syntheses that overlap in time. Callers with
// the same key share one execution and one result. The shared execution is
// cancelled only once every waiting caller has gone away.
type Inflight[T any] struct {
	sf singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
	gen     uint64
}

// flight is one execution for a key. A cancelled flight is dropped from
// flights at once, while its singleflight call may still be returning, so
// each flight runs under its own call key.
type flight struct {
	callKey string
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Do runs fn once per key among concurrent callers. shared reports whether
// the result was handed to more than one caller.
func (f *Inflight[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (T, bool, error) {
	var zero T

	fl := f.join(ctx, key)
	defer f.leave(key, fl)

	ch := f.sf.DoChan(fl.callKey, func() (any, error) {
		return fn(fl.ctx)
	})

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		return res.Val.(T), res.Shared, nil
	}
}

func (f *Inflight[T]) join(ctx context.Context, key string) *flight {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.flights == nil {
		f.flights = make(map[string]*flight)
	}
	fl, ok := f.flights[key]
	if !ok {
		f.gen++
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		fl = &flight{
			callKey: key + "#" + strconv.FormatUint(f.gen, 10),
			ctx:     fctx,
			cancel:  cancel,
		}
		f.flights[key] = fl
	}
	fl.waiters++
	return fl
}

func (f *Inflight[T]) leave(key string, fl *flight) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fl.waiters--
	if fl.waiters > 0 {
		return
	}
	fl.cancel()
	if f.flights[key] == fl {
		delete(f.flights, key)
	}
}

// Key hashes the parts that identify a synthesis. Parts are JSON encoded,
// so any serializable value can contribute.
func Key(parts ...any) (string, error) {
	d := xxhash.New()
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			return "", err
		}
		_, _ = d.Write(b)
		_, _ = d.Write([]byte{0})
	}
	return strconv.FormatUint(d.Sum64(), 16), nil
}
