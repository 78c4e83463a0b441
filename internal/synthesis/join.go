package synthesis

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs independent generation calls concurrently and waits for all
// of them. The first failure cancels the context handed to the others.
type Group struct {
	eg  *errgroup.Group
	ctx context.Context
}

func NewGroup(ctx context.Context) *Group {
	eg, gctx := errgroup.WithContext(ctx)
	return &Group{eg: eg, ctx: gctx}
}

// Future is the result slot of one spawned call. Get is valid only after
// Wait returned nil.
type Future[T any] struct {
	val T
}

func (f *Future[T]) Get() T { return f.val }

// Spawn starts fn on g. A failure is reported by Wait as a *GatewayError
// tagged with op.
func Spawn[T any](g *Group, op string, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{}
	g.eg.Go(func() error {
		v, err := fn(g.ctx)
		if err != nil {
			return &GatewayError{Op: op, Err: err}
		}
		f.val = v
		return nil
	})
	return f
}

// Wait blocks until every spawned call returned and yields the first error.
func (g *Group) Wait() error {
	return g.eg.Wait()
}
