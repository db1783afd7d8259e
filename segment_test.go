package pathkit

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewPath(t *testing.T) {
	tests := []struct {
		name    string
		elems   []any
		want    Path
		wantErr bool
	}{
		{
			name:  "strings and ints",
			elems: []any{"user", "scores", 1},
			want:  Path{Key("user"), Key("scores"), Key(1)},
		},
		{
			name:  "segment passed through",
			elems: []any{Alt("x", "y"), "z"},
			want:  Path{Alt("x", "y"), Key("z")},
		},
		{
			name:  "any slice becomes alternative group",
			elems: []any{[]any{"x", "y"}},
			want:  Path{Alt("x", "y")},
		},
		{
			name:  "empty",
			elems: nil,
			want:  Path{},
		},
		{
			name:    "float key rejected",
			elems:   []any{"a", 3.14},
			wantErr: true,
		},
		{
			name:    "nil key rejected",
			elems:   []any{nil},
			wantErr: true,
		},
		{
			name:    "empty alternative group rejected",
			elems:   []any{[]any{}},
			wantErr: true,
		},
		{
			name:    "non-literal alternative rejected",
			elems:   []any{[]any{"x", true}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPath(tt.elems...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSegment) {
					t.Errorf("error = %v, want ErrInvalidSegment", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPPanicsOnBadElement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("P() did not panic on a malformed element")
		}
	}()
	P("a", 3.14)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		sep     string
		want    Path
		wantErr bool
	}{
		{
			name: "dotted",
			path: "a.b.c",
			sep:  ".",
			want: Path{Key("a"), Key("b"), Key("c")},
		},
		{
			name: "custom separator",
			path: "a/b",
			sep:  "/",
			want: Path{Key("a"), Key("b")},
		},
		{
			name: "no separator occurrence",
			path: "abc",
			sep:  ".",
			want: Path{Key("abc")},
		},
		{
			name: "numeric parts stay strings",
			path: "scores.0",
			sep:  ".",
			want: Path{Key("scores"), Key("0")},
		},
		{
			name:    "empty separator",
			path:    "a.b",
			sep:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.path, tt.sep)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSeparator) {
					t.Errorf("error = %v, want ErrInvalidSeparator", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentString(t *testing.T) {
	if got := Key("user").String(); got != "user" {
		t.Errorf("Key String() = %q, want user", got)
	}
	if got := Key(3).String(); got != "3" {
		t.Errorf("Key String() = %q, want 3", got)
	}
	if got := Alt("x", "y").String(); got != "(x|y)" {
		t.Errorf("Alt String() = %q, want (x|y)", got)
	}
	if got := P("a", Alt("x", "y"), 2).String(); got != "a.(x|y).2" {
		t.Errorf("Path String() = %q, want a.(x|y).2", got)
	}
}

func TestSegmentAlternativesIsACopy(t *testing.T) {
	seg := Alt("x", "y")
	alts := seg.Alternatives()
	alts[0] = "mutated"

	if seg.alts[0] != "x" {
		t.Error("mutating the returned slice changed the segment")
	}
}
