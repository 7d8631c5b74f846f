package lazy

import (
	"context"
	"sync"

	"github.com/ib-77/ropasync/pkg/rop"
)

// Chain wraps a deferred computation settling to a rop.Result. The
// computation runs at most once, on the first Yield, and its Result is
// memoized. Every combinator returns a new Chain.
type Chain[T any] struct {
	ctx  context.Context
	run  func(ctx context.Context) rop.Result[T]
	once sync.Once
	res  rop.Result[T]
}

// Operation builds a fresh chain for each call. Retry and Timeout accept it.
type Operation[T any] func(ctx context.Context) *Chain[T]

// Defer creates a chain from a deferred computation.
func Defer[T any](ctx context.Context, run func(ctx context.Context) rop.Result[T]) *Chain[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Chain[T]{ctx: ctx, run: run}
}

// Start creates a settled chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	c := Defer[T](ctx, nil)
	c.once.Do(func() { c.res = result })
	return c
}

// Of creates a failed chain if err is not nil, a successful one otherwise.
func Of[T any](ctx context.Context, value T, err error) *Chain[T] {
	if err != nil {
		return Fail[T](ctx, err)
	}
	return Succeed(ctx, value)
}

func Succeed[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

func Fail[T any](ctx context.Context, err error) *Chain[T] {
	return Start(ctx, rop.Fail[T](err))
}

// FromFunc creates a chain whose computation is fn, run on first Yield.
func FromFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Chain[T] {
	return Defer(ctx, func(ctx context.Context) rop.Result[T] {
		v, err := fn(ctx)
		if err != nil {
			if rop.IsCancellationError(err) {
				return rop.Cancel[T](err)
			}
			return rop.Fail[T](err)
		}
		return rop.Success(v)
	})
}

// Go starts fn in its own goroutine right away and returns a chain settling
// to its outcome.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Chain[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	ch := make(chan rop.Result[T], 1)
	go func() {
		defer close(ch)
		ch <- FromFunc(ctx, fn).Yield()
	}()

	return FromChan(ctx, ch)
}

// FromChan creates a chain settling to the first Result received from ch.
// A channel closed without a value settles to rop.ErrNoResult, a context
// finished before a value arrives settles to a cancelled Result.
func FromChan[T any](ctx context.Context, ch <-chan rop.Result[T]) *Chain[T] {
	return Defer(ctx, func(ctx context.Context) rop.Result[T] {
		select {
		case res, ok := <-ch:
			if !ok {
				return rop.Fail[T](rop.ErrNoResult)
			}
			return res
		case <-ctx.Done():
			return rop.Cancel[T](ctx.Err())
		}
	})
}

// Context returns the context the chain evaluates with.
func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// Yield evaluates the chain once and returns the memoized Result.
func (c *Chain[T]) Yield() rop.Result[T] {
	c.once.Do(func() {
		c.res = rop.Capture(func() rop.Result[T] {
			return c.run(c.ctx)
		})
	})
	return c.res
}

// Await unwraps the settled Result into the (value, error) form.
func (c *Chain[T]) Await() (T, error) {
	res := c.Yield()
	if res.IsFailure() {
		var zero T
		return zero, res.Err()
	}
	return res.Result(), nil
}

// yieldOf evaluates a possibly nil chain.
func yieldOf[T any](c *Chain[T]) rop.Result[T] {
	if c == nil {
		return rop.Fail[T](rop.ErrNilChain)
	}
	return c.Yield()
}

// next derives a chain that yields c and feeds its Result to step.
func next[T, U any](c *Chain[T], step func(ctx context.Context, in rop.Result[T]) rop.Result[U]) *Chain[U] {
	return Defer(c.ctx, func(ctx context.Context) rop.Result[U] {
		return step(ctx, c.Yield())
	})
}
