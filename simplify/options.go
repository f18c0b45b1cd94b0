// SPDX-License-Identifier: MIT
package simplify

import (
	"log/slog"

	"github.com/arcmesh/qemsimplify/quadric"
)

// Options configures a Simplify call.
//
// Epsilon    – singular-quadric threshold passed to quadric.OptimalPlacement.
//              Must be > 0. Default is quadric.DefaultEpsilon.
// Telemetry  – whether the completion log line (spec §4.5/§7) is emitted.
//              Default true.
// Logger     – the *slog.Logger the telemetry line is written to.
//              Default slog.Default().
type Options struct {
	Epsilon   float64
	Telemetry bool
	Logger    *slog.Logger
}

// Option is a functional option for Simplify.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Epsilon:   quadric.DefaultEpsilon,
		Telemetry: true,
		Logger:    slog.Default(),
	}
}

// WithEpsilon overrides the singular-quadric detection threshold.
// Panics if eps is not strictly positive — an invalid threshold is a
// programmer error, not a runtime condition.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(panicBadEpsilon)
		}
		o.Epsilon = eps
	}
}

// WithTelemetry enables or disables the completion log line.
func WithTelemetry(enabled bool) Option {
	return func(o *Options) {
		o.Telemetry = enabled
	}
}

// WithLogger sets the logger the telemetry line is written to. Panics
// on a nil logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			panic(panicNilLogger)
		}
		o.Logger = logger
	}
}
