package pathkit

// Bound couples a fixed root value with resolution options, giving the
// object-style ergonomics of calling lookups on the structure itself. It
// holds no mutable state and is safe for concurrent use; the root is read,
// never modified.
type Bound struct {
	root any
	base Options
}

// Bind snapshots root together with the given options.
func Bind(root any, opts ...Option) *Bound {
	return &Bound{root: root, base: *newOptions(nil, opts)}
}

// Bind snapshots root together with the resolver's configured defaults and
// the given options.
func (r *Resolver) Bind(root any, opts ...Option) *Bound {
	return &Bound{root: root, base: *newOptions(&r.base, opts)}
}

// Root returns the bound root value.
func (b *Bound) Root() any {
	return b.root
}

// Get resolves a delimiter-separated string path against the bound root.
func (b *Bound) Get(path string, opts ...Option) (any, error) {
	o := newOptions(&b.base, opts)
	p, err := ParsePath(path, o.Separator)
	if err != nil {
		return nil, err
	}
	return resolveWith(b.root, p, o)
}

// Resolve resolves a segment path against the bound root.
func (b *Bound) Resolve(path Path, opts ...Option) (any, error) {
	return resolveWith(b.root, path, newOptions(&b.base, opts))
}

// Lookup resolves a segment path against the bound root and reports whether
// it resolved. The raw value is returned; neither the default nor the
// transform applies.
func (b *Bound) Lookup(path Path) (any, bool) {
	return Lookup(b.root, path)
}

// Map is a convenience alias for the common JSON-ish root. Lookups are plain
// resolutions against the map itself.
type Map map[string]any

// Get resolves a delimiter-separated string path against the map.
func (m Map) Get(path string, opts ...Option) (any, error) {
	return Get(map[string]any(m), path, opts...)
}

// Resolve resolves a segment path against the map.
func (m Map) Resolve(path Path, opts ...Option) (any, error) {
	return Resolve(map[string]any(m), path, opts...)
}

// Lookup resolves a segment path against the map and reports whether it
// resolved.
func (m Map) Lookup(path Path) (any, bool) {
	return Lookup(map[string]any(m), path)
}
