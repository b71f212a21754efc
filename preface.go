package http2

import "bytes"

// http2Preface is the 24-byte connection preface a client sends before any
// HTTP/2 frame. https://tools.ietf.org/html/rfc7540#section-3.5
var http2Preface = []byte("PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n")

// PrefaceLen is the byte length of the connection preface.
const PrefaceLen = 24

// ParsePreface reports whether buf begins with the HTTP/2 connection
// preface. On success it returns the number of bytes consumed (always
// PrefaceLen). buf shorter than PrefaceLen, or not matching byte-for-byte,
// returns ok == false and consumed == 0.
func ParsePreface(buf []byte) (ok bool, consumed int) {
	if len(buf) < PrefaceLen {
		return false, 0
	}
	if !bytes.Equal(buf[:PrefaceLen], http2Preface) {
		return false, 0
	}
	return true, PrefaceLen
}

// EncodePreface appends the connection preface to dst and returns the
// extended slice.
func EncodePreface(dst []byte) []byte {
	return append(dst, http2Preface...)
}

// WritePreface writes the connection preface using w, which must expose the
// same Write([]byte) (int, error) signature as *bufio.Writer.
func WritePreface(w interface{ Write([]byte) (int, error) }) error {
	_, err := w.Write(http2Preface)
	return err
}

// ReadPreface reads exactly PrefaceLen bytes from r and reports whether they
// match the connection preface. A short read is treated as a mismatch.
func ReadPreface(r interface{ Read([]byte) (int, error) }) bool {
	buf := make([]byte, PrefaceLen)
	n := 0
	for n < PrefaceLen {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			break
		}
	}
	if n != PrefaceLen {
		return false
	}
	ok, _ := ParsePreface(buf)
	return ok
}
