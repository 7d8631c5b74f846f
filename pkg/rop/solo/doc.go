// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. Every step that calls user code recovers panics into a failed
// Result carrying a rop.PanicError, so no panic escapes a step.
//
// Highlights:
// - Success/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/Filter: turn a success into a failure on rejection
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Tee/TeeError/DoubleTee: side-effect helpers
// - Recover/OrElse/HandleErrors: replace failures
// - Match: ordered condition/action dispatch
// - Finally/Fold: reduce to a concrete value
package solo
