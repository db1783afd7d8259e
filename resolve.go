package pathkit

import (
	"reflect"
	"strconv"
)

// stepResult is the outcome of applying one key to one container.
type stepResult int

const (
	stepFound stepResult = iota

	// stepAbsent means the container supported the strategy but the key,
	// index, or field was not there.
	stepAbsent

	// stepMismatch means the container could not support any strategy for
	// the key (wrong container type, non-integer index, non-string field
	// name, incompatible map key type).
	stepMismatch
)

// Resolve walks root along the given path and returns the final value, or the
// configured default when any step fails. The returned error is non-nil only
// for a malformed path or a failing transform, never for the shape of root.
func Resolve(root any, path Path, opts ...Option) (any, error) {
	return resolveWith(root, path, newOptions(nil, opts))
}

// Get is Resolve for delimiter-separated string paths. The separator defaults
// to "." and can be changed with WithSeparator.
func Get(root any, path string, opts ...Option) (any, error) {
	o := newOptions(nil, opts)
	p, err := ParsePath(path, o.Separator)
	if err != nil {
		return nil, err
	}
	return resolveWith(root, p, o)
}

// Lookup walks root along the given path and reports whether it resolved. The
// raw value is returned on success; neither the default nor the transform
// applies. A malformed path reports not found.
func Lookup(root any, path Path, opts ...Option) (any, bool) {
	o := newOptions(nil, opts)
	if err := path.validate(); err != nil {
		return nil, false
	}
	v, found, _ := walk(root, path, o)
	return v, found
}

// resolveWith runs the shared resolution pipeline: validate, walk, then fold
// the outcome into default-or-transformed-value.
func resolveWith(root any, path Path, o *Options) (any, error) {
	if err := path.validate(); err != nil {
		return nil, &PathError{Op: "resolve", Path: path.String(), Err: err}
	}
	v, found, mismatch := walk(root, path, o)
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

// walk performs the traversal itself. It returns the final value and whether
// the full path resolved. Under strict types, a step whose container cannot
// support the segment stops the walk and is reported as the third result;
// the caller still receives found == false.
func walk(root any, path Path, o *Options) (value any, found bool, mismatch *TypeMismatchError) {
	if len(path) == 0 {
		return root, true, nil
	}
	current := root
	for i, seg := range path {
		rv, ok := deref(reflect.ValueOf(current))
		if !ok {
			// Nil root is plain absence even under strict types: no
			// access is attempted against it.
			if i > 0 && o.StrictTypes {
				return nil, false, &TypeMismatchError{
					Path:         path,
					SegmentIndex: i,
					Segment:      seg,
					Container:    KindUnsupported,
				}
			}
			return nil, false, nil
		}
		kind := containerKind(rv)

		next, res := applySegment(rv, kind, seg)
		if res == stepFound {
			current = next
			continue
		}
		if res == stepMismatch && o.StrictTypes {
			return nil, false, &TypeMismatchError{
				Path:         path,
				SegmentIndex: i,
				Segment:      seg,
				Container:    kind,
			}
		}
		return nil, false, nil
	}
	return current, true, nil
}

// applySegment tries each alternative of seg against the container in order.
// The segment mismatches only when every alternative mismatches, so a group
// that mixes strategies degrades to absence when at least one strategy was
// supported.
func applySegment(rv reflect.Value, kind ContainerKind, seg Segment) (any, stepResult) {
	mismatches := 0
	for _, key := range seg.alts {
		v, res := applyKey(rv, kind, key)
		switch res {
		case stepFound:
			return v, stepFound
		case stepMismatch:
			mismatches++
		}
	}
	if mismatches == len(seg.alts) {
		return nil, stepMismatch
	}
	return nil, stepAbsent
}

// applyKey applies a single literal key to a container using the strategy its
// kind supports: mapping lookup, sequence indexing, or attribute read.
func applyKey(rv reflect.Value, kind ContainerKind, key any) (any, stepResult) {
	switch kind {
	case KindMapping:
		return mapLookup(rv, key)
	case KindSequence:
		idx, ok := intIndex(key)
		if !ok {
			return nil, stepMismatch
		}
		n := rv.Len()
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx >= n {
			return nil, stepAbsent
		}
		return rv.Index(idx).Interface(), stepFound
	case KindAttribute:
		name, ok := key.(string)
		if !ok {
			return nil, stepMismatch
		}
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, stepAbsent
		}
		return f.Interface(), stepFound
	default:
		return nil, stepMismatch
	}
}

// mapLookup looks key up in a map, coercing the key to the map's key type
// where that is unambiguous: integer widths are converted, and a string key
// that parses as an integer can index an integer-keyed map (so dotted string
// paths reach map[int]... values). A key that cannot be coerced is a type
// mismatch.
func mapLookup(rv reflect.Value, key any) (any, stepResult) {
	kt := rv.Type().Key()
	kv := reflect.ValueOf(key)

	switch {
	case kv.Type().AssignableTo(kt):
		// Use as-is; also covers interface key types.
	case isIntKind(kt.Kind()) && isIntKind(kv.Kind()):
		kv = kv.Convert(kt)
	case isIntKind(kt.Kind()) && kv.Kind() == reflect.String:
		n, err := strconv.ParseInt(kv.String(), 10, 64)
		if err != nil {
			return nil, stepMismatch
		}
		kv = reflect.ValueOf(n).Convert(kt)
	default:
		return nil, stepMismatch
	}

	mv := rv.MapIndex(kv)
	if !mv.IsValid() {
		return nil, stepAbsent
	}
	return mv.Interface(), stepFound
}

// intIndex extracts a sequence index from a key: integer kinds directly,
// strings via parsing (so dotted paths like "users.0.name" work).
func intIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	case string:
		n, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}
