package pathkit

import "testing"

func TestBind(t *testing.T) {
	b := Bind(userRoot(), WithDefault("n/a"))

	got, err := b.Get("user.profile.address.city")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "Seattle" {
		t.Errorf("Get() = %v, want Seattle", got)
	}

	got, err = b.Get("user.profile.address.country")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "n/a" {
		t.Errorf("Get() = %v, want bound default", got)
	}

	got, err = b.Resolve(P("user", "scores", 1))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != 92 {
		t.Errorf("Resolve() = %v, want 92", got)
	}

	if v, found := b.Lookup(P("user", "missing")); found || v != nil {
		t.Errorf("Lookup() = %v, %v, want nil, false", v, found)
	}
}

func TestBindPerCallOverride(t *testing.T) {
	b := Bind(userRoot(), WithDefault("bound"))

	got, err := b.Get("nope", WithDefault("call"))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "call" {
		t.Errorf("Get() = %v, want per-call default", got)
	}

	// The bound default is untouched.
	got, _ = b.Get("nope")
	if got != "bound" {
		t.Errorf("Get() = %v, want bound default", got)
	}
}

func TestResolverBind(t *testing.T) {
	r, err := New(&Config{Separator: "/", CacheEnabled: true, CacheSize: 8})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	b := r.Bind(userRoot())
	got, err := b.Get("user/scores/2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 78 {
		t.Errorf("Get() = %v, want 78", got)
	}

	if b.Root() == nil {
		t.Error("Root() = nil")
	}
}

func TestMap(t *testing.T) {
	m := Map{
		"user": map[string]any{
			"name":  "Ada",
			"langs": []any{"go", "python"},
		},
	}

	got, err := m.Get("user.name")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "Ada" {
		t.Errorf("Get() = %v, want Ada", got)
	}

	got, err = m.Resolve(P("user", "langs", -1), WithDefault("none"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "python" {
		t.Errorf("Resolve() = %v, want python", got)
	}

	if v, found := m.Lookup(P("user", "name")); !found || v != "Ada" {
		t.Errorf("Lookup() = %v, %v, want Ada, true", v, found)
	}
}

func TestNestedMapValues(t *testing.T) {
	// Map values nested inside a Map are still mapping containers.
	m := Map{"outer": Map{"inner": 1}}

	got, err := m.Get("outer.inner")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Get() = %v, want 1", got)
	}
}
