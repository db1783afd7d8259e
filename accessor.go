package pathkit

// Accessor is an immutable snapshot of a parsed path and its options. It is
// created once by Compile or CompileString, invoked many times, and never
// mutated, so it is safe to share across goroutines.
type Accessor struct {
	path Path
	opts Options
}

// Compile validates path once and binds the given options, returning a
// reusable accessor. Resolution through the accessor skips all parsing and
// validation, so the per-call cost is one traversal walk.
func Compile(path Path, opts ...Option) (*Accessor, error) {
	if err := path.validate(); err != nil {
		return nil, &PathError{Op: "compile", Path: path.String(), Err: err}
	}
	p := make(Path, len(path))
	copy(p, path)
	return &Accessor{path: p, opts: *newOptions(nil, opts)}, nil
}

// CompileString parses a delimiter-separated string path once and binds the
// given options. The separator defaults to "." and can be changed with
// WithSeparator.
func CompileString(path string, opts ...Option) (*Accessor, error) {
	o := newOptions(nil, opts)
	p, err := ParsePath(path, o.Separator)
	if err != nil {
		return nil, err
	}
	return &Accessor{path: p, opts: *o}, nil
}

// Resolve runs the bound path against root. Semantics match the package-level
// Resolve with the options captured at compile time.
func (a *Accessor) Resolve(root any) (any, error) {
	return a.run(root, &a.opts)
}

// ResolveWith runs the bound path against root with per-call overrides of the
// compiled options (typically the default or transform).
func (a *Accessor) ResolveWith(root any, opts ...Option) (any, error) {
	return a.run(root, newOptions(&a.opts, opts))
}

// Lookup runs the bound path against root and reports whether it resolved.
// The raw value is returned; neither the default nor the transform applies.
func (a *Accessor) Lookup(root any) (any, bool) {
	v, found, _ := walk(root, a.path, &a.opts)
	return v, found
}

func (a *Accessor) run(root any, o *Options) (any, error) {
	v, found, mismatch := walk(root, a.path, o)
	if mismatch != nil && o.TypeMismatchHandler != nil {
		o.TypeMismatchHandler(mismatch)
	}
	if !found {
		return o.Default, nil
	}
	if o.Transform != nil {
		return o.Transform(v)
	}
	return v, nil
}

// Path returns a copy of the bound path.
func (a *Accessor) Path() Path {
	p := make(Path, len(a.path))
	copy(p, a.path)
	return p
}

// String implements fmt.Stringer
func (a *Accessor) String() string {
	return a.path.String()
}
