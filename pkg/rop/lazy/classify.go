package lazy

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/solo"
)

// HandleErrors replaces a failure whose error satisfies criteria with the
// chain returned by handler. Other results pass through.
func (c *Chain[T]) HandleErrors(criteria rop.ErrorCriteria,
	handler func(ctx context.Context, err error) *Chain[T]) *Chain[T] {
	return next(c, func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.HandleErrors(ctx, in, criteria, func(ctx context.Context, err error) rop.Result[T] {
			return yieldOf(handler(ctx, err))
		})
	})
}

// HandleSpecificErrors handles failures tagged with one of kinds.
func (c *Chain[T]) HandleSpecificErrors(kinds []rop.Kind,
	handler func(ctx context.Context, err error) *Chain[T]) *Chain[T] {
	return c.HandleErrors(rop.ErrorCriteria{Kinds: kinds}, handler)
}

// HandleHTTPErrors handles failures carrying one of statusCodes.
func (c *Chain[T]) HandleHTTPErrors(statusCodes []int,
	handler func(ctx context.Context, err error) *Chain[T]) *Chain[T] {
	return c.HandleErrors(rop.ErrorCriteria{StatusCodes: statusCodes}, handler)
}
