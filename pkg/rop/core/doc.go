// Package core carries ambient configuration for chain evaluation on a
// context.Context: the logger used by instrumentation steps, the metrics
// collector, and the concurrency bound for aggregation.
package core
