package lazy

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

// Map transforms the successful value. A panic in onSuccess becomes a failure
// whose message is the panic message.
func Map[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) U) *Chain[U] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[U] {
		return solo.Map(ctx, in, onSuccess)
	})
}

// FlatMap chains a function returning another chain and flattens it.
func FlatMap[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) *Chain[U]) *Chain[U] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[U] {
		return solo.Switch(ctx, in, func(ctx context.Context, t T) rop.Result[U] {
			return yieldOf(onSuccess(ctx, t))
		})
	})
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(ctx context.Context, t T) rop.Result[U]) *Chain[U] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[U] {
		return solo.Switch(ctx, in, onSuccess)
	})
}

// Try chains a function that returns (U, error)
func Try[T, U any](c *Chain[T], tryOnSuccess func(ctx context.Context, t T) (U, error)) *Chain[U] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[U] {
		return solo.Try(ctx, in, tryOnSuccess)
	})
}

// Recover turns a failure into the success value returned by onError.
func (c *Chain[T]) Recover(onError func(ctx context.Context, err error) T) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Recover(ctx, in, onError)
	})
}

// OrElse replaces a failure with alternative, failure included.
func (c *Chain[T]) OrElse(alternative *Chain[T]) *Chain[T] {
	return c.OrElseWith(func(context.Context, error) *Chain[T] {
		return alternative
	})
}

// OrElseWith replaces a failure with the chain built from its error.
func (c *Chain[T]) OrElseWith(alternative func(ctx context.Context, err error) *Chain[T]) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.OrElse(ctx, in, func(ctx context.Context, err error) rop.Result[T] {
			return yieldOf(alternative(ctx, err))
		})
	})
}

// Filter fails the chain when predicate does not hold for the value.
// onReject may be nil, then the failure is rop.ErrPredicate.
func (c *Chain[T]) Filter(predicate func(ctx context.Context, t T) bool,
	onReject func(ctx context.Context, t T) error) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Filter(ctx, in, predicate, onReject)
	})
}

// Tap performs a side effect on success without changing the result
func (c *Chain[T]) Tap(onSuccess func(ctx context.Context, t T)) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Tee(ctx, in, onSuccess)
	})
}

// TapError performs a side effect on failure without changing the result
func (c *Chain[T]) TapError(onError func(ctx context.Context, err error)) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.TeeError(ctx, in, onError)
	})
}

// Match dispatches the successful value through conditions.
func (c *Chain[T]) Match(conditions []solo.MatchCondition[T], options solo.MatchOptions) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Match(ctx, in, conditions, options)
	})
}

// FoldResult holds the outcome of Fold: Value when the callbacks ran, Err
// when one of them panicked.
type FoldResult[U any] struct {
	Value U
	Err   error
}

// Fold evaluates the chain and collapses it through onSuccess or onFailure.
func Fold[T, U any](c *Chain[T],
	onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) FoldResult[U] {

	v, err := solo.Fold(c.ctx, c.Yield(), onSuccess, onFailure)
	return FoldResult[U]{Value: v, Err: err}
}
