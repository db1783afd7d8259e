package pathkit

import (
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create Resolver instances with custom env prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Resolver instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Resolver instance using the builder's prefix
func (b *Builder) New() (*Resolver, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Resolver resolves paths with configured default options and a bounded cache
// of parsed string paths. The zero value is not usable; create instances with
// New or NewFromEnv.
type Resolver struct {
	base  Options
	cache Cache
}

// Init initializes the global resolver instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultResolver, defaultErr = New(cfg)
	})

	return defaultErr
}

// Default returns the global resolver, initializing it from the environment
// on first use
func Default() (*Resolver, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultResolver, nil
}

// Reset clears the global resolver so the next Init or Default rebuilds it.
// Intended for tests.
func Reset() {
	defaultOnce = sync.Once{}
	defaultResolver = nil
	defaultErr = nil
}

// New creates a new resolver with the given config
func New(cfg *Config) (*Resolver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &Resolver{
		base: Options{
			Separator:   cfg.Separator,
			StrictTypes: cfg.StrictTypes,
		},
	}
	if cfg.CacheEnabled {
		r.cache = NewMemoryCache(cfg.CacheSize)
	}
	return r, nil
}

// NewFromEnv creates a new resolver from environment configuration
func NewFromEnv() (*Resolver, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}
	if cfg.Separator == "" {
		return fmt.Errorf("%w: separator is required", ErrInvalidConfig)
	}
	if cfg.CacheEnabled && cfg.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive when the cache is enabled", ErrInvalidConfig)
	}
	return nil
}

// Get resolves a delimiter-separated string path against root using the
// resolver's configured defaults. Parsed paths are cached, so repeated string
// paths skip re-parsing.
func (r *Resolver) Get(root any, path string, opts ...Option) (any, error) {
	o := newOptions(&r.base, opts)
	p, err := r.parse(path, o.Separator)
	if err != nil {
		return nil, err
	}
	return resolveWith(root, p, o)
}

// Resolve resolves a segment path against root using the resolver's
// configured defaults.
func (r *Resolver) Resolve(root any, path Path, opts ...Option) (any, error) {
	return resolveWith(root, path, newOptions(&r.base, opts))
}

// Lookup resolves a segment path and reports whether it resolved. The raw
// value is returned; neither the default nor the transform applies.
func (r *Resolver) Lookup(root any, path Path, opts ...Option) (any, bool) {
	o := newOptions(&r.base, opts)
	if err := path.validate(); err != nil {
		return nil, false
	}
	v, found, _ := walk(root, path, o)
	return v, found
}

// Compile builds an accessor bound to the resolver's configured defaults.
func (r *Resolver) Compile(path Path, opts ...Option) (*Accessor, error) {
	if err := path.validate(); err != nil {
		return nil, &PathError{Op: "compile", Path: path.String(), Err: err}
	}
	p := make(Path, len(path))
	copy(p, path)
	return &Accessor{path: p, opts: *newOptions(&r.base, opts)}, nil
}

// CompileString parses a string path (through the cache) and builds an
// accessor bound to the resolver's configured defaults.
func (r *Resolver) CompileString(path string, opts ...Option) (*Accessor, error) {
	o := newOptions(&r.base, opts)
	p, err := r.parse(path, o.Separator)
	if err != nil {
		return nil, err
	}
	return &Accessor{path: p, opts: *o}, nil
}

// CacheStats returns parse-cache statistics. Zero statistics are returned
// when the cache is disabled.
func (r *Resolver) CacheStats() CacheStatistics {
	if stats, ok := r.cache.(CacheStats); ok {
		return stats.Stats()
	}
	return CacheStatistics{}
}

// parse returns the parsed form of path, consulting the parse cache when one
// is configured.
func (r *Resolver) parse(path, sep string) (Path, error) {
	if r.cache == nil {
		return ParsePath(path, sep)
	}
	key := parseCacheKey(path, sep)
	if v, ok := r.cache.Get(key); ok {
		if p, ok := v.(Path); ok {
			return p, nil
		}
	}
	p, err := ParsePath(path, sep)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, p, 0)
	return p, nil
}
