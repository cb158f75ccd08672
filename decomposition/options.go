package decomposition

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/intervalxt/iet"
)

// Option configures a Decomposition. Use with New(t, opts...) or
// Decompose(t, budget, opts...).
type Option func(*Options)

// Options holds the configurable behavior of a Decomposition.
type Options struct {
	// Ctx is checked between induction steps; cancelling it stops Run with
	// the context's error. Defaults to context.Background().
	Ctx context.Context

	// Logger receives structured debug and info records. When nil, a
	// discard logger is used.
	Logger *slog.Logger

	// Workers is the number of components processed concurrently by Run.
	// Values below 2 select sequential processing. Results do not depend on
	// this setting.
	Workers int

	// KeaneCheck enables the rational independence certificate. Default true.
	KeaneCheck bool

	// RepeatDetection enables the configuration-repeat certificate.
	// Default true.
	RepeatDetection bool

	// OnStep, if non-nil, is called after every induction step with the
	// component, its step count and the step result. With Workers > 1 it may
	// be called concurrently for different components.
	OnStep func(id ComponentID, step int, res iet.InductionResult)

	// OnSplit, if non-nil, is called when a component splits.
	OnSplit func(parent, left, right ComponentID)

	// OnClassify, if non-nil, is called when a component reaches a terminal
	// classification.
	OnClassify func(id ComponentID, c Classification)
}

// DefaultOptions returns Options with:
//   - Background context
//   - discard logger
//   - sequential processing
//   - both certificates enabled
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Logger:          nil,
		Workers:         1,
		KeaneCheck:      true,
		RepeatDetection: true,
	}
}

// WithContext sets the context checked between steps. A nil context has no
// effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithWorkers sets the number of concurrently processed components.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithKeaneCheck enables or disables the rational independence certificate.
func WithKeaneCheck(enabled bool) Option {
	return func(o *Options) {
		o.KeaneCheck = enabled
	}
}

// WithRepeatDetection enables or disables the configuration-repeat
// certificate.
func WithRepeatDetection(enabled bool) Option {
	return func(o *Options) {
		o.RepeatDetection = enabled
	}
}

// WithOnStep installs a hook called after every induction step.
func WithOnStep(fn func(id ComponentID, step int, res iet.InductionResult)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithOnSplit installs a hook called when a component splits.
func WithOnSplit(fn func(parent, left, right ComponentID)) Option {
	return func(o *Options) {
		o.OnSplit = fn
	}
}

// WithOnClassify installs a hook called on every terminal classification.
func WithOnClassify(fn func(id ComponentID, c Classification)) Option {
	return func(o *Options) {
		o.OnClassify = fn
	}
}

// logger returns the configured logger, or a discard logger if nil.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
