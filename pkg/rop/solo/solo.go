package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropasync/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		return rop.Capture(func() rop.Result[T] {
			if isValid, errMsg := validate(ctx, input.Result()); !isValid {
				return rop.Fail[T](errors.New(errMsg))
			}
			return input
		})
	}
	return input
}

// Filter keeps a success value only if predicate holds. When it does not, or
// when predicate panics, the failure comes from onReject, or ErrPredicate
// when onReject is nil or returns nil.
func Filter[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	onReject func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	v := input.Result()
	ok := rop.Capture(func() rop.Result[bool] {
		return rop.Success(predicate(ctx, v))
	})
	if ok.IsSuccess() && ok.Result() {
		return input
	}

	if onReject == nil {
		return rop.Fail[T](rop.ErrPredicate)
	}
	return rop.Capture(func() rop.Result[T] {
		if err := onReject(ctx, v); err != nil {
			return rop.Fail[T](err)
		}
		return rop.Fail[T](rop.ErrPredicate)
	})
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Capture(func() rop.Result[Out] {
			return onSuccess(ctx, input.Result())
		})
	}
	return rop.CancelFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Capture(func() rop.Result[Out] {
			return rop.Success(onSuccess(ctx, input.Result()))
		})
	}
	return rop.CancelFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Capture(func() rop.Result[Out] {
			out, err := onTryExecute(ctx, input.Result())
			if err != nil {
				if rop.IsCancellationError(err) {
					return rop.Cancel[Out](err)
				}
				return rop.Fail[Out](err)
			}
			return rop.Success(out)
		})
	}
	return rop.CancelFrom[In, Out](input)
}

// Tee runs onSuccess for its side effect. The input is returned unchanged
// unless onSuccess panics.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		return rop.Capture(func() rop.Result[T] {
			onSuccess(ctx, input.Result())
			return input
		})
	}
	return input
}

func TeeError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsFailure() {
		return rop.Capture(func() rop.Result[T] {
			onError(ctx, input.Err())
			return input
		})
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		return Tee(ctx, input, onSuccess)
	}
	return TeeError(ctx, input, onError)
}

// Recover replaces a failure with the value produced by onError.
func Recover[T any](ctx context.Context, input rop.Result[T],
	onError func(ctx context.Context, err error) T) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return rop.Capture(func() rop.Result[T] {
		return rop.Success(onError(ctx, input.Err()))
	})
}

// OrElse replaces a failure with the result produced by alternative.
func OrElse[T any](ctx context.Context, input rop.Result[T],
	alternative func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return rop.Capture(func() rop.Result[T] {
		return alternative(ctx, input.Err())
	})
}

// HandleErrors hands a failure matching criteria over to handler.
func HandleErrors[T any](ctx context.Context, input rop.Result[T],
	criteria rop.ErrorCriteria,
	handler func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() || !criteria.Matches(input.Err()) {
		return input
	}
	return rop.Capture(func() rop.Result[T] {
		return handler(ctx, input.Err())
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// Fold collapses input through onSuccess or onError. A panic in either
// callback is returned as a rop.PanicError.
func Fold[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) (out Out, err error) {

	defer func() {
		if v := recover(); v != nil {
			var zero Out
			out, err = zero, rop.PanicError{Value: v}
		}
	}()

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result()), nil
	}
	return onError(ctx, input.Err()), nil
}
