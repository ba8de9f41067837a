package reactive

import (
	"log/slog"

	"github.com/statekit/reactive/internal"
)

// Option configures a graph at creation.
type Option func(*internal.Graph)

// WithLogger sets the logger used for swallowed failures (effect cleanups
// that panic). Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *internal.Graph) {
		g.SetLogger(l)
	}
}

// SignalOption configures a signal at creation.
type SignalOption[T any] func(*signalConfig[T])

type signalConfig[T any] struct {
	equals func(a, b T) bool
}

// WithEquals replaces the write equality gate. The default compares with ==
// and treats non-comparable values as always changed.
func WithEquals[T any](equals func(a, b T) bool) SignalOption[T] {
	return func(cfg *signalConfig[T]) {
		cfg.equals = equals
	}
}
