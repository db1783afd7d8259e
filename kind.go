package pathkit

import "reflect"

// ContainerKind classifies a value by the access strategies it supports.
type ContainerKind int

const (
	// KindUnsupported means the value supports no traversal strategy
	// (scalars, channels, functions, nil).
	KindUnsupported ContainerKind = iota

	// KindMapping means the value supports lookup by key (any Go map).
	KindMapping

	// KindSequence means the value supports lookup by integer position
	// (slices and arrays).
	KindSequence

	// KindAttribute means the value supports lookup by exported field name
	// (structs).
	KindAttribute
)

// String implements fmt.Stringer
func (k ContainerKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindAttribute:
		return "attribute"
	default:
		return "unsupported"
	}
}

// KindOf reports the container kind of v after dereferencing pointers and
// interfaces. A nil value is KindUnsupported.
func KindOf(v any) ContainerKind {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return KindUnsupported
	}
	return containerKind(rv)
}

func containerKind(rv reflect.Value) ContainerKind {
	switch rv.Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Struct:
		return KindAttribute
	default:
		return KindUnsupported
	}
}

// deref unwraps pointers and interfaces until a concrete value is reached.
// The second result is false when the chain ends in nil or v is invalid.
func deref(rv reflect.Value) (reflect.Value, bool) {
	for {
		switch rv.Kind() {
		case reflect.Invalid:
			return rv, false
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return rv, false
			}
			rv = rv.Elem()
		default:
			return rv, true
		}
	}
}
