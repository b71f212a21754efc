package http1

import "testing"

func TestHeaderKeyStandardEquality(t *testing.T) {
	a := NewHeaderKey("content-type")
	b := NewHeaderKey("Content-Type")

	if !a.Equal(b) {
		t.Fatal("expected case-insensitive standard header names to be equal")
	}
	if a.Standard != HeaderContentType {
		t.Fatalf("expected HeaderContentType, got %v", a.Standard)
	}
}

func TestHeaderKeyCustomDoesNotCollide(t *testing.T) {
	a := NewHeaderKey("X-Foo")
	b := NewHeaderKey("X-Bar")

	if a.Equal(b) {
		t.Fatal("distinct custom header names must not compare equal")
	}
	if a.Standard != HeaderUnknown || b.Standard != HeaderUnknown {
		t.Fatal("custom headers must not resolve to a standard tag")
	}
}

func TestHeaderGetSet(t *testing.T) {
	var h Header
	h.Add("X-Custom", "first")
	h.Add("X-Other", "kept")

	if v, ok := h.Get("x-custom"); !ok || v != "first" {
		t.Fatalf("unexpected get: %q, %v", v, ok)
	}

	h.Set("X-Custom", "second")
	if v, _ := h.Get("X-Custom"); v != "second" {
		t.Fatalf("expected Set to replace the value, got %q", v)
	}
	if len(h) != 2 {
		t.Fatalf("expected 2 fields after Set, got %d", len(h))
	}
}

func TestHeaderOrderPreserved(t *testing.T) {
	var h Header
	h.Add("B", "2")
	h.Add("A", "1")

	if h[0].Key.Custom != "B" || h[1].Key.Custom != "A" {
		t.Fatal("Header must preserve insertion order")
	}
}
