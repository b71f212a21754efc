// Package http2utils provides the bit-packed integer conversions and
// byte-buffer helpers shared by the frame and HPACK codecs.
package http2utils

import (
	"crypto/rand"
	"errors"
	"reflect"
	"unsafe"

	"github.com/valyala/fastrand"
)

// ErrShortPadding is returned by CutPadding when the declared pad length
// does not fit inside the payload.
var ErrShortPadding = errors.New("http2utils: padding exceeds payload length")

// Uint24ToBytes writes the low 24 bits of n into b, big-endian.
func Uint24ToBytes(b []byte, n uint32) {
	_ = b[2] // bound checking
	b[0] = byte(n >> 16)
	b[1] = byte(n >> 8)
	b[2] = byte(n)
}

// BytesToUint24 reads a big-endian 24-bit value from b.
func BytesToUint24(b []byte) uint32 {
	_ = b[2] // bound checking
	return uint32(b[0])<<16 |
		uint32(b[1])<<8 |
		uint32(b[2])
}

// AppendUint32Bytes appends the big-endian encoding of n to dst.
func AppendUint32Bytes(dst []byte, n uint32) []byte {
	dst = append(dst, byte(n>>24))
	dst = append(dst, byte(n>>16))
	dst = append(dst, byte(n>>8))
	dst = append(dst, byte(n))
	return dst
}

// Uint32ToBytes writes n into b, big-endian.
func Uint32ToBytes(b []byte, n uint32) {
	_ = b[3] // bound checking
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}

// BytesToUint32 reads a big-endian 32-bit value from b.
func BytesToUint32(b []byte) uint32 {
	_ = b[3] // bound checking
	n := uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
	return n
}

// EqualsFold reports whether a and b are equal ignoring ASCII case.
func EqualsFold(a, b []byte) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

// Resize grows b, reusing its capacity, so that len(b) == neededLen.
func Resize(b []byte, neededLen int) []byte {
	b = b[:cap(b)]

	if n := neededLen - len(b); n > 0 {
		b = append(b, make([]byte, n)...)
	}

	return b[:neededLen]
}

// CutPadding strips PADDED-flag framing from payload: the first byte is the
// pad length, the last pad bytes are padding, the rest is content.
func CutPadding(payload []byte, length int) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrShortPadding
	}

	pad := int(payload[0])
	if length-pad-1 < 0 || len(payload) < length-pad {
		return nil, ErrShortPadding
	}

	return payload[1 : length-pad], nil
}

// AddPadding prepends a random pad length byte and appends that many random
// bytes to b, as a sender may choose to do for PADDED frames.
func AddPadding(b []byte) []byte {
	n := int(fastrand.Uint32n(256-9)) + 9
	nn := len(b)

	b = Resize(b, nn+n)
	b = append(b[:1], b...)

	b[0] = uint8(n)

	rand.Read(b[nn+1 : nn+n+1])

	return b
}

// FastBytesToString converts b to a string without copying.
func FastBytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// FastStringToBytes converts s to a byte slice without copying. The result
// must not be mutated.
func FastStringToBytes(s string) []byte {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh := reflect.SliceHeader{
		Data: sh.Data,
		Len:  sh.Len,
		Cap:  sh.Len,
	}

	return *(*[]byte)(unsafe.Pointer(&bh))
}
