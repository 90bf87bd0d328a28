// SPDX-License-Identifier: MIT
// Package transform: functional configuration for Builder.
//
// Defaults are constants so callers and tests share one source of truth.
// Options only ever touch the Options value they are applied to; there is
// no package-level convention state.

package transform

// ---------- Defaults ----------

const (
	// DefaultHandedness matches GLM without GLM_FORCE_LEFT_HANDED.
	DefaultHandedness = RightHanded

	// DefaultDepth matches GLM without GLM_FORCE_DEPTH_ZERO_TO_ONE.
	DefaultDepth = NegativeOneToOne
)

// Options holds the configuration a Builder is created with.
type Options struct {
	Convention Convention
}

// Option mutates Options during New.
type Option func(*Options)

// DefaultOptions returns the GLM default configuration.
func DefaultOptions() Options {
	return Options{Convention: Convention{Handedness: DefaultHandedness, Depth: DefaultDepth}}
}

// WithLeftHanded selects the left-handed projection and view formulas.
func WithLeftHanded() Option {
	return func(o *Options) { o.Convention.Handedness = LeftHanded }
}

// WithRightHanded selects the right-handed formulas (default).
func WithRightHanded() Option {
	return func(o *Options) { o.Convention.Handedness = RightHanded }
}

// WithDepthZeroToOne maps near..far onto NDC z in [0, 1].
func WithDepthZeroToOne() Option {
	return func(o *Options) { o.Convention.Depth = ZeroToOne }
}

// WithDepthNegativeOneToOne maps near..far onto NDC z in [-1, 1] (default).
func WithDepthNegativeOneToOne() Option {
	return func(o *Options) { o.Convention.Depth = NegativeOneToOne }
}

// WithConvention sets both fields at once, typically from ParseConvention.
// Panics if c holds an undeclared Handedness or DepthRange.
func WithConvention(c Convention) Option {
	if !c.Valid() {
		violate(panicConvention, c)
	}
	return func(o *Options) { o.Convention = c }
}

// gatherOptions applies opts over the defaults, later options winning.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
