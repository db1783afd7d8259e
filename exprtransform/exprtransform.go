// Package exprtransform adapts expr-lang programs into pathkit transforms,
// so the transformation applied to a resolved value can be configured as a
// string instead of compiled-in Go code.
//
//	acc, _ := pathkit.CompileString("user.scores",
//	    pathkit.WithTransform(exprtransform.Must("sum(value)")))
//
// The resolved value is exposed to the program as the variable "value".
package exprtransform

import (
	"github.com/expr-lang/expr"

	"github.com/gobeaver/pathkit"
)

// New compiles src once and returns a transform that evaluates it against
// each resolved value. Compile errors surface here, at configuration time;
// evaluation errors propagate through resolution like any transform error.
func New(src string, opts ...expr.Option) (pathkit.Transform, error) {
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	return func(value any) (any, error) {
		return expr.Run(program, map[string]any{"value": value})
	}, nil
}

// Must is like New but panics on a compile error. It is intended for
// expression literals known at compile time.
func Must(src string, opts ...expr.Option) pathkit.Transform {
	t, err := New(src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}
