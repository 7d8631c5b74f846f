// Package lazy provides Chain[T], a deferred and memoized Railway-Oriented
// chain built on solo primitives.
//
// A Chain carries a context and a computation settling to a rop.Result[T].
// Nothing runs until Yield (or Await) is called. The computation then runs
// exactly once, and later calls observe the memoized Result. Combinators never
// mutate a Chain: each returns a new Chain whose computation yields its
// parent first.
//
// Key operations:
// - Of/Succeed/Fail/Start: settled chains
// - Defer/FromFunc: lazy computations
// - Go/FromChan: bridge work that is already running
// - Map/FlatMap/Then/Try: transform the successful value
// - Recover/OrElse/OrElseWith: replace a failure
// - Filter/Tap/TapError/Match: check, observe and dispatch
// - Zip/ZipAll: join chains evaluated concurrently
// - Retry/Timeout: resilience around an Operation
// - HandleErrors/HandleSpecificErrors/HandleHTTPErrors: classified recovery
// - Log/TimeExecution/Fold: instrumentation and collapse
//
// Panics raised by user functions become failures carrying rop.PanicError.
//
// Example:
//
//	price, err := lazy.Try(
//		lazy.FromFunc(ctx, loadOrder),
//		func(ctx context.Context, o Order) (float64, error) { return quote(ctx, o) },
//	).Filter(func(_ context.Context, p float64) bool { return p > 0 }, nil).
//		Await()
package lazy
