package http2

import "testing"

func TestUint24RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 255, 1 << 16, maxUint24} {
		u := NewUint24(n)
		b := make([]byte, 3)
		u.ToBytes(b)
		if got := Uint24FromBytes(b); got != u {
			t.Fatalf("n=%d: got %d, want %d", n, got, u)
		}
	}
}

func TestUint24Saturates(t *testing.T) {
	u := NewUint24(maxUint24 + 5)
	if uint32(u) != 4 {
		t.Fatalf("got %d, want 4", u)
	}
}

func TestUint31RoundTrip(t *testing.T) {
	for _, n := range []uint32{0, 1, 1 << 30, maxUint31} {
		u := NewUint31(n)
		b := make([]byte, 4)
		u.ToBytes(b, false)
		got, reserved := Uint31FromBytes(b)
		if got != u || reserved {
			t.Fatalf("n=%d: got %d reserved=%v", n, got, reserved)
		}
	}
}

func TestUint31ReservedBit(t *testing.T) {
	u := NewUint31(42)
	b := make([]byte, 4)
	u.ToBytes(b, true)

	got, reserved := Uint31FromBytes(b)
	if got != u {
		t.Fatalf("got %d, want %d", got, u)
	}
	if !reserved {
		t.Fatal("expected reserved bit to be set")
	}
}
