package lazy

import (
	"context"
	"fmt"
	"time"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/logging"
	"github.com/ib-77/ropasync/pkg/rop/metrics"
)

func renderResult[T any](r rop.Result[T]) string {
	if r.IsSuccess() {
		return fmt.Sprintf("Success: %v", r.Result())
	}
	return fmt.Sprintf("Failure: %v", r.Err())
}

func resolveLogger(ctx context.Context, logger logging.Logger) logging.Logger {
	if logger != nil {
		return logger
	}
	return core.GetLogger(ctx, logging.Default())
}

// Log writes the settled result to logger and passes it through. A nil
// logger falls back to the one on the context, then to logging.Default.
// A nil render uses "Success: <value>" / "Failure: <error>".
func (c *Chain[T]) Log(logger logging.Logger, render func(r rop.Result[T]) string) *Chain[T] {
	if render == nil {
		render = renderResult[T]
	}
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		resolveLogger(ctx, logger).Log(ctx, render(in))
		return in
	})
}

// TimeExecution evaluates op, logs how long it took and returns the settled
// Result itself rather than a chain.
func TimeExecution[T any](ctx context.Context, op Operation[T], logger logging.Logger,
	render func(d time.Duration, r rop.Result[T]) string) rop.Result[T] {

	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	res := rop.Capture(func() rop.Result[T] {
		return yieldOf(op(ctx))
	})
	elapsed := time.Since(start)

	core.GetMetrics(ctx).ObserveExecution(outcomeOf(res), elapsed)

	var msg string
	if render != nil {
		msg = render(elapsed, res)
	} else {
		msg = fmt.Sprintf("Execution took %v", elapsed)
		if res.IsFailure() {
			msg += fmt.Sprintf(" with error: %v", res.Err())
		}
	}
	resolveLogger(ctx, logger).Log(ctx, msg)

	return res
}

func outcomeOf[T any](r rop.Result[T]) string {
	switch {
	case r.IsSuccess():
		return metrics.OutcomeSuccess
	case r.IsCancel():
		return metrics.OutcomeCancel
	default:
		return metrics.OutcomeFailure
	}
}
