package http2

import "testing"

func TestParsePreface(t *testing.T) {
	buf := []byte("PRI * HTTP/2.0\r\n\r\nSM\r\n\r\ntrailing garbage")

	ok, n := ParsePreface(buf)
	if !ok {
		t.Fatal("expected preface to match")
	}
	if n != PrefaceLen {
		t.Fatalf("unexpected consumed count: %d <> %d", n, PrefaceLen)
	}
}

func TestParsePrefaceShort(t *testing.T) {
	ok, n := ParsePreface([]byte("PRI * HTTP/2.0"))
	if ok {
		t.Fatal("expected short buffer to fail")
	}
	if n != 0 {
		t.Fatalf("expected 0 consumed, got %d", n)
	}
}

func TestParsePrefaceMismatch(t *testing.T) {
	buf := make([]byte, PrefaceLen)
	copy(buf, "GET / HTTP/1.1\r\n\r\n")

	ok, _ := ParsePreface(buf)
	if ok {
		t.Fatal("expected mismatched buffer to fail")
	}
}

func TestEncodePreface(t *testing.T) {
	got := EncodePreface(nil)
	if string(got) != string(http2Preface) {
		t.Fatalf("unexpected preface: %q", got)
	}
}
