package pathkit

// DefaultSeparator is the delimiter used for string paths unless overridden
// by WithSeparator or configuration.
const DefaultSeparator = "."

// Transform is a caller-supplied function applied to the final resolved
// value. It runs only when resolution succeeds; its error is propagated to
// the caller unmodified and is never applied to the default.
type Transform func(value any) (any, error)

// Option represents a resolution option
type Option func(*Options)

// Options contains all possible options for a resolution
type Options struct {
	// Default is the value returned when resolution fails at any step.
	Default any

	// Separator is the delimiter used when the path is given as a single
	// string.
	Separator string

	// Transform is applied to the final resolved value on success.
	Transform Transform

	// StrictTypes enables per-step container type checking. A step whose
	// container cannot support the segment stops the walk immediately
	// instead of falling through to the next strategy.
	StrictTypes bool

	// TypeMismatchHandler receives strict-mode mismatches. It is the only
	// channel through which a type mismatch is observable; the resolved
	// value is still the default.
	TypeMismatchHandler func(*TypeMismatchError)
}

// WithDefault sets the value returned when resolution fails
func WithDefault(v any) Option {
	return func(o *Options) {
		o.Default = v
	}
}

// WithSeparator sets the delimiter for string paths
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithTransform sets the transform applied to the resolved value
func WithTransform(fn Transform) Option {
	return func(o *Options) {
		o.Transform = fn
	}
}

// WithStrictTypes enables or disables strict container type checking
func WithStrictTypes(strict bool) Option {
	return func(o *Options) {
		o.StrictTypes = strict
	}
}

// WithTypeMismatchHandler sets the handler invoked on strict-mode mismatches
func WithTypeMismatchHandler(fn func(*TypeMismatchError)) Option {
	return func(o *Options) {
		o.TypeMismatchHandler = fn
	}
}

// newOptions builds an Options record from a base (may be nil) and a list of
// overrides.
func newOptions(base *Options, opts []Option) *Options {
	o := &Options{Separator: DefaultSeparator}
	if base != nil {
		*o = *base
		if o.Separator == "" {
			o.Separator = DefaultSeparator
		}
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
