package http2

// Resize grows b, reusing its capacity, so that len(b) == neededLen.
func Resize(b []byte, neededLen int) []byte {
	b = b[:cap(b)]
	if n := neededLen - len(b); n > 0 {
		b = append(b, make([]byte, n)...)
	}
	return b[:neededLen]
}

// Uint24 is a 24-bit unsigned integer, the width HTTP/2 uses for frame
// length fields. https://tools.ietf.org/html/rfc7540#section-4.1
type Uint24 uint32

const maxUint24 = 1<<24 - 1

// NewUint24 masks n to 24 bits, saturating (wrapping) any higher bits away.
func NewUint24(n uint32) Uint24 {
	return Uint24(n & maxUint24)
}

// ToBytes writes the big-endian 3-byte form of u into b.
func (u Uint24) ToBytes(b []byte) {
	_ = b[2]
	b[0] = byte(u >> 16)
	b[1] = byte(u >> 8)
	b[2] = byte(u)
}

// Uint24FromBytes reads a big-endian 3-byte value.
func Uint24FromBytes(b []byte) Uint24 {
	_ = b[2]
	return Uint24(uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]))
}

// Uint31 is a 31-bit unsigned integer. Stream identifiers and the
// WindowUpdate increment are both carried in a 32-bit word whose high bit is
// reserved for out-of-band signalling (the stream exclusivity bit for
// Priority, or a reserved bit elsewhere).
// https://tools.ietf.org/html/rfc7540#section-4.1
type Uint31 uint32

const maxUint31 = 1<<31 - 1

// NewUint31 masks n to 31 bits.
func NewUint31(n uint32) Uint31 {
	return Uint31(n & maxUint31)
}

// Uint31FromBytes splits a big-endian 4-byte word into its reserved bit and
// its 31-bit value.
func Uint31FromBytes(b []byte) (value Uint31, reserved bool) {
	_ = b[3]
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return Uint31(n & maxUint31), n&(1<<31) != 0
}

// ToBytes writes the big-endian 4-byte form of u into b, OR-ing the reserved
// bit back in when requested.
func (u Uint31) ToBytes(b []byte, reserved bool) {
	_ = b[3]
	n := uint32(u) & maxUint31
	if reserved {
		n |= 1 << 31
	}
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}
