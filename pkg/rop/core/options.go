package core

import (
	"context"

	"github.com/ib-77/ropasync/pkg/rop/logging"
	"github.com/ib-77/ropasync/pkg/rop/metrics"
)

type OptionKey string

const (
	LoggerOptionKey  OptionKey = "logger_options"
	MetricsOptionKey OptionKey = "metrics_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type LoggerOptions struct {
	Logger logging.Logger
}

type MetricsOptions struct {
	Collector *metrics.Collector
}

func WithLogger(ctx context.Context, logger logging.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithMetrics(ctx context.Context, collector *metrics.Collector) context.Context {
	return context.WithValue(ctx, MetricsOptionKey, MetricsOptions{Collector: collector})
}

// WithWorkerOptions bounds how many chains are evaluated at once by
// aggregating steps. A value <= 0 means no bound.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetLogger(ctx context.Context, defaultLogger logging.Logger) logging.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return defaultLogger
}

func GetMetrics(ctx context.Context) *metrics.Collector {
	options, ok := ctx.Value(MetricsOptionKey).(MetricsOptions)
	if ok {
		return options.Collector
	}
	return nil
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
