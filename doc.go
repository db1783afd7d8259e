// Package pathkit provides safe traversal of nested heterogeneous structures
// (maps, slices, arrays, and structs) without errors for missing keys, wrong
// container types, or out-of-range indices.
//
// Every lookup that cannot be satisfied converges to a caller-supplied default
// instead of failing. The only errors a caller can ever observe are
// configuration errors (a malformed path or separator) and errors returned by
// a caller-supplied transform; the shape of the traversed value never produces
// an error.
//
// # Basic Usage
//
//	root := map[string]any{
//	    "user": map[string]any{
//	        "profile": map[string]any{"city": "Seattle"},
//	        "scores":  []any{85, 92, 78},
//	    },
//	}
//
//	// Dotted-string form
//	city, _ := pathkit.Get(root, "user.profile.city")
//
//	// Segment form, mixing keys and indices
//	score, _ := pathkit.Resolve(root, pathkit.P("user", "scores", 1))
//
//	// Missing paths yield the default, never an error
//	country, _ := pathkit.Get(root, "user.profile.country",
//	    pathkit.WithDefault("USA"))
//
// # Segments and Alternatives
//
// A path is an ordered sequence of segments. Each segment is either a single
// literal key (string or integer) or an ordered group of alternatives tried in
// order, first success wins:
//
//	// Tries "nickname" first, then "name"
//	name, _ := pathkit.Resolve(root, pathkit.P("user", pathkit.Alt("nickname", "name")))
//
// Alternative groups are only expressible in the segment form; dotted strings
// always split into single-key segments.
//
// # Compiled Accessors
//
// When the same path is resolved repeatedly against different roots, compile
// it once:
//
//	acc, err := pathkit.CompileString("user.profile.city",
//	    pathkit.WithDefault("unknown"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, root := range roots {
//	    city, _ := acc.Resolve(root)
//	    // ...
//	}
//
// An Accessor is immutable after construction and safe for concurrent use.
//
// # Strict Type Checking
//
// With WithStrictTypes enabled, a step whose container cannot support the
// requested access strategy (for example an integer index against a struct)
// stops the walk immediately instead of silently falling through. The result
// is still the default; the mismatch is observable through
// WithTypeMismatchHandler:
//
//	v, _ := pathkit.Get(root, "user.scores.name",
//	    pathkit.WithStrictTypes(true),
//	    pathkit.WithTypeMismatchHandler(func(e *pathkit.TypeMismatchError) {
//	        log.Printf("type mismatch: %v", e)
//	    }))
//
// # Resolver Service
//
// A Resolver carries environment-derived defaults and keeps a bounded,
// xxhash-keyed cache of parsed string paths, so hot lookups skip re-parsing:
//
//	r, err := pathkit.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := r.Get(root, "user.profile.city")
//	stats := r.CacheStats()
//
// Package-level Get/Resolve are stateless and never consult the environment;
// Init and Default manage a process-wide resolver for callers that want one.
package pathkit
