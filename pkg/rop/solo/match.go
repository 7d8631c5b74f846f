package solo

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
)

type MatchMode int

const (
	// MatchFirst runs the action of the first condition that holds and stops.
	MatchFirst MatchMode = iota
	// MatchEvery runs, in order, the action of every condition that holds.
	// Each predicate sees the value left by the previous actions.
	MatchEvery
)

func (m MatchMode) String() string {
	switch m {
	case MatchFirst:
		return "first"
	case MatchEvery:
		return "every"
	default:
		return "unknown"
	}
}

// MatchCondition pairs a predicate with the action run when it holds.
type MatchCondition[T any] struct {
	When func(ctx context.Context, in T) bool
	Then func(ctx context.Context, in T) (T, error)
}

type MatchOptions struct {
	// ContinueIfNoMatch passes the input through when no predicate holds
	// instead of failing with rop.ErrNoMatch.
	ContinueIfNoMatch bool
	// ContinueOnError keeps going when an action or a predicate fails. In
	// MatchFirst mode the input passes through, in MatchEvery mode the failed
	// condition is skipped.
	ContinueOnError bool
	Mode            MatchMode
}

// Match dispatches a success value through conditions. Failures pass through.
func Match[T any](ctx context.Context, input rop.Result[T],
	conditions []MatchCondition[T], options MatchOptions) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	current := input
	matched := false

	for _, cond := range conditions {
		if cond.When == nil || cond.Then == nil {
			continue
		}

		holds := rop.Capture(func() rop.Result[bool] {
			return rop.Success(cond.When(ctx, current.Result()))
		})
		if holds.IsFailure() {
			if !options.ContinueOnError {
				return rop.Fail[T](holds.Err())
			}
			if options.Mode == MatchFirst {
				return input
			}
			matched = true
			continue
		}
		if !holds.Result() {
			continue
		}
		matched = true

		next := Try(ctx, current, cond.Then)
		if next.IsFailure() {
			if !options.ContinueOnError {
				return next
			}
			if options.Mode == MatchFirst {
				return input
			}
			continue
		}

		if options.Mode == MatchFirst {
			return next
		}
		current = next
	}

	if !matched {
		if options.ContinueIfNoMatch {
			return input
		}
		return rop.Fail[T](rop.ErrNoMatch)
	}
	return current
}
