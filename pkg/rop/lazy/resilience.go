package lazy

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
	"github.com/ib-77/ropasync/pkg/rop/metrics"
)

type RetryOptions struct {
	// Times is the number of attempts made after the first one.
	Times uint
	// Delay is the wait after the first failed attempt.
	Delay time.Duration
	// BackoffFactor multiplies the delay after every failed attempt.
	// Values <= 0 are treated as 1.
	BackoffFactor float64
	// OnError, if set, is called after every failed attempt with the
	// attempt number, starting at 1.
	OnError func(err error, attempt int)
}

func (o RetryOptions) backOff() backoff.BackOff {
	factor := o.BackoffFactor
	if factor <= 0 {
		factor = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.Delay
	b.Multiplier = factor
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Retry evaluates a fresh chain from op until one succeeds or 1+Times
// attempts have failed, in which case the last failure is returned.
func Retry[T any](ctx context.Context, op Operation[T], options RetryOptions) *Chain[T] {
	return Defer(ctx, func(ctx context.Context) rop.Result[T] {
		collector := core.GetMetrics(ctx)
		schedule := options.backOff()

		for attempt := 1; ; attempt++ {
			res := rop.Capture(func() rop.Result[T] {
				return yieldOf(op(ctx))
			})
			if res.IsSuccess() {
				collector.RetryAttempt(metrics.OutcomeSuccess)
				return res
			}
			collector.RetryAttempt(outcomeOf(res))

			if options.OnError != nil {
				options.OnError(res.Err(), attempt)
			}

			if uint(attempt) > options.Times {
				return res
			}

			delay := schedule.NextBackOff()
			slog.DebugContext(ctx, "retrying operation",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.Any("error", res.Err()))

			if err := sleep(ctx, delay); err != nil {
				return rop.Cancel[T](err)
			}
		}
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Timeout races op against a timer of d. If the timer fires first the
// operation's context is cancelled and the chain fails with timeoutErr, or
// rop.ErrTimeout when timeoutErr is nil.
//
// Cancellation is cooperative: an operation ignoring its context keeps
// running after the timeout has settled the chain.
//
// Any cancelled Result from op is ignored while ctx is alive and the timer
// decides. This includes a context.DeadlineExceeded from a deadline op set
// on its own, so such a failure only surfaces as timeoutErr once d elapses.
func Timeout[T any](ctx context.Context, op Operation[T], d time.Duration, timeoutErr error) *Chain[T] {
	if timeoutErr == nil {
		timeoutErr = rop.ErrTimeout
	}

	return Defer(ctx, func(ctx context.Context) rop.Result[T] {
		opCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		done := make(chan rop.Result[T], 1)
		go func() {
			done <- rop.Capture(func() rop.Result[T] {
				return yieldOf(op(opCtx))
			})
		}()

		timer := time.NewTimer(d)
		defer timer.Stop()

		for {
			select {
			case res := <-done:
				if rop.IsCancelled(res) && ctx.Err() == nil {
					// the timer decides
					done = nil
					continue
				}
				return res
			case <-timer.C:
				cancel()
				core.GetMetrics(ctx).TimedOut()
				slog.DebugContext(ctx, "operation timed out", slog.Duration("timeout", d))
				return rop.Fail[T](timeoutErr)
			case <-ctx.Done():
				return rop.Cancel[T](ctx.Err())
			}
		}
	})
}
