package dynarray

import "go.uber.org/zap"

// Option configures an Array at construction time.
type Option[T any] func(*Array[T])

// WithTuning replaces the default tuning.
func WithTuning[T any](t Tuning) Option[T] {
	return func(a *Array[T]) {
		a.tuning = t
	}
}

// WithCapacity sets the bootstrap capacity, overriding the tuning value.
func WithCapacity[T any](n int) Option[T] {
	return func(a *Array[T]) {
		a.tuning.BootstrapCapacity = n
	}
}

// WithLogger attaches a logger for debug-level allocation and ownership
// events. The default is a no-op logger.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(a *Array[T]) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics attaches a Metrics sink.
func WithMetrics[T any](m *Metrics) Option[T] {
	return func(a *Array[T]) {
		a.metrics = m
	}
}
