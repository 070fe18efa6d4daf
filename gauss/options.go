// SPDX-License-Identifier: MIT

// Package gauss: functional options.
//
// Design goals:
//   - No numeric knobs: Tolerance is a constant so every decision shares it.
//   - Options only affect observation and naming, never the arithmetic.
//   - Constructors panic on nonsensical values (programmer error).
package gauss

// Naming defaults (single source of truth).
const (
	// DefaultVariablePrefix names unknowns x1, x2, ...
	DefaultVariablePrefix = "x"

	// DefaultParameterPrefix names free parameters t1, t2, ...
	DefaultParameterPrefix = "t"
)

const (
	panicEmptyVariablePrefix  = "gauss: WithVariablePrefix: prefix must be non-empty"
	panicEmptyParameterPrefix = "gauss: WithParameterPrefix: prefix must be non-empty"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	observer    Observer // nil ⇒ no notifications
	varPrefix   string   // DefaultVariablePrefix
	paramPrefix string   // DefaultParameterPrefix
}

// WithObserver registers an observer notified after every mutation step.
// Passing nil clears a previously set observer. Use Observers to fan out.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.observer = obs }
}

// WithVariablePrefix sets the prefix for variable names (default "x").
// Panics on an empty prefix.
func WithVariablePrefix(prefix string) Option {
	if prefix == "" {
		panic(panicEmptyVariablePrefix)
	}

	return func(o *Options) { o.varPrefix = prefix }
}

// WithParameterPrefix sets the prefix for free parameters (default "t").
// Panics on an empty prefix.
func WithParameterPrefix(prefix string) Option {
	if prefix == "" {
		panic(panicEmptyParameterPrefix)
	}

	return func(o *Options) { o.paramPrefix = prefix }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		varPrefix:   DefaultVariablePrefix,
		paramPrefix: DefaultParameterPrefix,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
