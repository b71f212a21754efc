package http2utils

import (
	"bytes"
	"testing"
)

func TestUint24RoundTrip(t *testing.T) {
	b := make([]byte, 3)
	for _, n := range []uint32{0, 1, 255, 65536, 1<<24 - 1} {
		Uint24ToBytes(b, n)
		if got := BytesToUint24(b); got != n {
			t.Fatalf("got %d, want %d", got, n)
		}
	}
}

func TestUint32RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	for _, n := range []uint32{0, 1, 1 << 31, 1<<32 - 1} {
		Uint32ToBytes(b, n)
		if got := BytesToUint32(b); got != n {
			t.Fatalf("got %d, want %d", got, n)
		}
	}
}

func TestEqualsFold(t *testing.T) {
	if !EqualsFold([]byte("Content-Type"), []byte("content-type")) {
		t.Fatal("expected case-insensitive match")
	}
	if EqualsFold([]byte("a"), []byte("ab")) {
		t.Fatal("expected length mismatch to fail")
	}
}

func TestCutPadding(t *testing.T) {
	payload := append([]byte{13}, bytes.Repeat([]byte("a"), 67)...)
	payload = append(payload, make([]byte, 13)...)

	data, err := CutPadding(payload, len(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 67 {
		t.Fatalf("got len %d, want 67", len(data))
	}
}

func TestCutPaddingShort(t *testing.T) {
	_, err := CutPadding([]byte{255, 1, 2}, 3)
	if err != ErrShortPadding {
		t.Fatalf("got %v, want ErrShortPadding", err)
	}
}

func TestAddPadding(t *testing.T) {
	data := []byte("hello")
	padded := AddPadding(append([]byte(nil), data...))
	got, err := CutPadding(padded, len(padded))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestFastStringBytesRoundTrip(t *testing.T) {
	s := "round-trip"
	b := FastStringToBytes(s)
	if FastBytesToString(b) != s {
		t.Fatalf("got %q, want %q", FastBytesToString(b), s)
	}
}
