package lazy

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
)

// Named is a Zip input. Name is the key of its value in the aggregate,
// the entry's index is used when Name is empty.
type Named[T any] struct {
	Chain *Chain[T]
	Name  string
}

// Zip evaluates every entry concurrently and joins their values by key.
// If any entry fails, the aggregate fails with the error of the first
// failing entry in argument order.
func Zip[T any](ctx context.Context, entries ...Named[T]) *Chain[map[string]T] {
	return ZipAll(ctx, entries)
}

// ZipAll is Zip over a slice.
func ZipAll[T any](ctx context.Context, entries []Named[T]) *Chain[map[string]T] {
	return Defer(ctx, func(ctx context.Context) rop.Result[map[string]T] {
		settled := make([]rop.Result[T], len(entries))

		g := &errgroup.Group{}
		if limit := core.GetWorkerMaxCount(ctx, 0); limit > 0 {
			g.SetLimit(limit)
		}
		for i, e := range entries {
			g.Go(func() error {
				settled[i] = rop.Capture(func() rop.Result[T] {
					return yieldOf(e.Chain)
				})
				return nil
			})
		}
		_ = g.Wait()

		out := make(map[string]T, len(entries))
		for i, res := range settled {
			if res.IsFailure() {
				return rop.CancelFrom[T, map[string]T](res)
			}
			out[keyOf(entries[i], i)] = res.Result()
		}
		return rop.Success(out)
	})
}

func keyOf[T any](e Named[T], index int) string {
	if e.Name != "" {
		return e.Name
	}
	return strconv.Itoa(index)
}
