package pathkit

import (
	"fmt"
	"strings"
)

// Segment is a single step of a Path: either one literal key (string or
// integer) or an ordered group of alternative keys tried in order, first
// success wins.
//
// The zero Segment is invalid; build segments with Key or Alt, or let NewPath
// and ParsePath build them.
type Segment struct {
	alts []any
}

// Key returns a segment holding a single literal key. The key must be a
// string or an integer; anything else is rejected when the path is validated.
func Key(k any) Segment {
	return Segment{alts: []any{k}}
}

// Alt returns a segment holding alternative keys, tried in the given order.
func Alt(keys ...any) Segment {
	alts := make([]any, len(keys))
	copy(alts, keys)
	return Segment{alts: alts}
}

// Alternatives returns the segment's keys in trial order. Single-key segments
// return a one-element slice.
func (s Segment) Alternatives() []any {
	out := make([]any, len(s.alts))
	copy(out, s.alts)
	return out
}

// String implements fmt.Stringer
func (s Segment) String() string {
	if len(s.alts) == 1 {
		return fmt.Sprintf("%v", s.alts[0])
	}
	parts := make([]string, len(s.alts))
	for i, a := range s.alts {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return "(" + strings.Join(parts, "|") + ")"
}

// validate checks that the segment has at least one alternative and that
// every alternative is a string or integer literal.
func (s Segment) validate() error {
	if len(s.alts) == 0 {
		return fmt.Errorf("%w: empty alternative group", ErrInvalidSegment)
	}
	for _, a := range s.alts {
		if !validKey(a) {
			return fmt.Errorf("%w: key %v (%T) is not a string or integer", ErrInvalidSegment, a, a)
		}
	}
	return nil
}

func validKey(k any) bool {
	switch k.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// Path is an ordered sequence of segments describing where to look inside a
// nested structure.
type Path []Segment

// String implements fmt.Stringer
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// validate checks every segment of the path.
func (p Path) validate() error {
	for i, s := range p {
		if err := s.validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return nil
}

// NewPath builds a Path from a mix of element forms: a Segment is used as-is,
// a []any becomes an alternative group, and a string or integer becomes a
// single-key segment. Any other element type is a configuration error.
func NewPath(elems ...any) (Path, error) {
	p := make(Path, 0, len(elems))
	for i, e := range elems {
		switch v := e.(type) {
		case Segment:
			p = append(p, v)
		case []any:
			p = append(p, Alt(v...))
		default:
			if !validKey(e) {
				return nil, &PathError{
					Op:   "build",
					Path: fmt.Sprintf("element %d", i),
					Err:  fmt.Errorf("%w: %v (%T)", ErrInvalidSegment, e, e),
				}
			}
			p = append(p, Key(e))
		}
	}
	if err := p.validate(); err != nil {
		return nil, &PathError{Op: "build", Path: p.String(), Err: err}
	}
	return p, nil
}

// P builds a Path like NewPath but panics on a malformed element. It is
// intended for literal paths known at compile time.
func P(elems ...any) Path {
	p, err := NewPath(elems...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath splits a delimiter-separated string into a Path of single-key
// string segments. An empty separator is a configuration error. Alternative
// groups are not expressible in string form.
func ParsePath(s, sep string) (Path, error) {
	if sep == "" {
		return nil, &PathError{Op: "parse", Path: s, Err: ErrInvalidSeparator}
	}
	parts := strings.Split(s, sep)
	p := make(Path, len(parts))
	for i, part := range parts {
		p[i] = Key(part)
	}
	return p, nil
}
