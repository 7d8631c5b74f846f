// Package demo wires the lazy chain operators into a small order-quoting
// pipeline driven by the demo configuration.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/ib-77/ropasync/internal/config"
	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/lazy"
	"github.com/ib-77/ropasync/pkg/rop/logging"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

type Quote struct {
	Item   string
	Region string
	Price  int
	Tier   string
}

// Run builds and evaluates the pipeline once.
func Run(ctx context.Context, cfg config.Config, logger logging.Logger) rop.Result[Quote] {
	var calls atomic.Int32

	inventory := func(ctx context.Context) *lazy.Chain[any] {
		return lazy.Timeout(ctx, func(ctx context.Context) *lazy.Chain[any] {
			return lazy.FromFunc(ctx, func(ctx context.Context) (any, error) {
				if int(calls.Add(1)) <= cfg.Failures {
					return nil, rop.NewHTTPError(http.StatusServiceUnavailable, "inventory unavailable")
				}
				return "widget", nil
			})
		}, cfg.Timeout.Duration, nil)
	}

	pipeline := func(ctx context.Context) *lazy.Chain[Quote] {
		joined := lazy.Zip(ctx,
			lazy.Named[any]{Name: "item", Chain: lazy.Retry(ctx, inventory, lazy.RetryOptions{
				Times:         cfg.Retry.Times,
				Delay:         cfg.Retry.Delay,
				BackoffFactor: cfg.Retry.BackoffFactor,
				OnError: func(err error, attempt int) {
					slog.WarnContext(ctx, "inventory attempt failed", slog.Int("attempt", attempt), slog.Any("error", err))
				},
			})},
			lazy.Named[any]{Name: "price", Chain: lazy.FromFunc(ctx, func(context.Context) (any, error) { return 42, nil })},
			lazy.Named[any]{Name: "region", Chain: lazy.Succeed[any](ctx, "eu")},
		)

		quote := lazy.Try(joined, func(_ context.Context, m map[string]any) (Quote, error) {
			item, ok := m["item"].(string)
			if !ok {
				return Quote{}, fmt.Errorf("unexpected item %v", m["item"])
			}
			price, _ := m["price"].(int)
			region, _ := m["region"].(string)
			return Quote{Item: item, Region: region, Price: price}, nil
		})

		return quote.
			HandleHTTPErrors([]int{http.StatusServiceUnavailable}, func(ctx context.Context, err error) *lazy.Chain[Quote] {
				return lazy.Succeed(ctx, Quote{Item: "backorder", Tier: "none"})
			}).
			Filter(func(_ context.Context, q Quote) bool { return q.Price >= 0 }, nil).
			Match([]solo.MatchCondition[Quote]{
				{When: func(_ context.Context, q Quote) bool { return q.Price >= 100 }, Then: tier("premium")},
				{When: func(_ context.Context, q Quote) bool { return q.Price > 0 }, Then: tier("standard")},
			}, solo.MatchOptions{ContinueIfNoMatch: true}).
			Log(logger, nil)
	}

	return lazy.TimeExecution(ctx, pipeline, logger, nil)
}

func tier(name string) func(context.Context, Quote) (Quote, error) {
	return func(_ context.Context, q Quote) (Quote, error) {
		q.Tier = name
		return q, nil
	}
}
