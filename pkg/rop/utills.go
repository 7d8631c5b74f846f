package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsCancelled reports whether a failed Result was produced by cancellation,
// either flagged as such or carrying a context error.
func IsCancelled[T any](r Result[T]) bool {
	if r.IsSuccess() {
		return false
	}
	return r.IsCancel() || IsCancellationError(r.Err())
}

// Capture runs fn and converts a panic raised inside it into a failed Result.
func Capture[T any](fn func() Result[T]) (res Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = Fail[T](PanicError{Value: v})
		}
	}()
	return fn()
}
