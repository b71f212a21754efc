package http2

import (
	"bufio"
	"sync"
)

// defaultDynamicTableSize is the initial SETTINGS_HEADER_TABLE_SIZE value,
// applied before either peer sends anything else.
// https://tools.ietf.org/html/rfc7541#section-4.2
const defaultDynamicTableSize = 4096

// maxHpackInt is the upper bound an HPACK integer's accumulated value may
// reach before readInt/readIntFrom reject it as overflow, per spec.md §4.3
// ("reject > 2^32 after scaling").
const maxHpackInt = 1 << 32

type staticEntry struct {
	name, value string
}

// staticTable is the fixed 61-entry table every HPACK implementation shares.
// https://tools.ietf.org/html/rfc7541#appendix-A
var staticTable = [...]staticEntry{
	{":authority", ""},
	{":method", "GET"},
	{":method", "POST"},
	{":path", "/"},
	{":path", "/index.html"},
	{":scheme", "http"},
	{":scheme", "https"},
	{":status", "200"},
	{":status", "204"},
	{":status", "206"},
	{":status", "304"},
	{":status", "400"},
	{":status", "404"},
	{":status", "500"},
	{"accept-charset", ""},
	{"accept-encoding", "gzip, deflate"},
	{"accept-language", ""},
	{"accept-ranges", ""},
	{"accept", ""},
	{"access-control-allow-origin", ""},
	{"age", ""},
	{"allow", ""},
	{"authorization", ""},
	{"cache-control", ""},
	{"content-disposition", ""},
	{"content-encoding", ""},
	{"content-language", ""},
	{"content-length", ""},
	{"content-location", ""},
	{"content-range", ""},
	{"content-type", ""},
	{"cookie", ""},
	{"date", ""},
	{"etag", ""},
	{"expect", ""},
	{"expires", ""},
	{"from", ""},
	{"host", ""},
	{"if-match", ""},
	{"if-modified-since", ""},
	{"if-none-match", ""},
	{"if-range", ""},
	{"if-unmodified-since", ""},
	{"last-modified", ""},
	{"link", ""},
	{"location", ""},
	{"max-forwards", ""},
	{"proxy-authenticate", ""},
	{"proxy-authorization", ""},
	{"range", ""},
	{"referer", ""},
	{"refresh", ""},
	{"retry-after", ""},
	{"server", ""},
	{"set-cookie", ""},
	{"strict-transport-security", ""},
	{"transfer-encoding", ""},
	{"user-agent", ""},
	{"vary", ""},
	{"via", ""},
	{"www-authenticate", ""},
}

// HPACK holds the per-connection-direction state needed to decode and encode
// HTTP/2 header blocks: the dynamic table and the staging areas used by Read
// and Write.
//
// Use AcquireHPACK to obtain one from the pool.
type HPACK struct {
	// fields holds the header list produced by the most recent Read call.
	// It is cleared by releaseFields, independently of the dynamic table.
	fields []*HeaderField

	// dynamic is the dynamic table, most recently inserted entry first.
	dynamic []*HeaderField

	// toAdd is the pending set of fields queued by Add, consumed by Write.
	toAdd []*HeaderField

	tableSize    int
	maxTableSize int

	// DisableCompression turns off Huffman encoding of literal strings.
	DisableCompression bool
}

var hpackPool = sync.Pool{
	New: func() interface{} {
		return &HPACK{
			maxTableSize: defaultDynamicTableSize,
		}
	},
}

// AcquireHPACK gets an HPACK from the pool.
func AcquireHPACK() *HPACK {
	return hpackPool.Get().(*HPACK)
}

// ReleaseHPACK puts hp back into the pool.
func ReleaseHPACK(hp *HPACK) {
	hp.Reset()
	hpackPool.Put(hp)
}

// Reset clears fields, the dynamic table and any pending Add calls.
func (hp *HPACK) Reset() {
	hp.releaseFields()

	for _, hf := range hp.dynamic {
		ReleaseHeaderField(hf)
	}
	hp.dynamic = hp.dynamic[:0]

	for _, hf := range hp.toAdd {
		ReleaseHeaderField(hf)
	}
	hp.toAdd = hp.toAdd[:0]

	hp.tableSize = 0
	hp.maxTableSize = defaultDynamicTableSize
	hp.DisableCompression = false
}

// releaseFields clears the decoded header list without touching the
// dynamic table.
func (hp *HPACK) releaseFields() {
	for _, hf := range hp.fields {
		ReleaseHeaderField(hf)
	}
	hp.fields = hp.fields[:0]
}

// SetMaxTableSize sets the dynamic table's byte-size budget, evicting
// entries if the new budget is smaller than what is currently stored.
//
// https://tools.ietf.org/html/rfc7541#section-4.3
func (hp *HPACK) SetMaxTableSize(n int) {
	hp.maxTableSize = n
	hp.evict()
}

func (hp *HPACK) evict() {
	for hp.tableSize > hp.maxTableSize && len(hp.dynamic) > 0 {
		last := hp.dynamic[len(hp.dynamic)-1]
		hp.tableSize -= last.Size()
		hp.dynamic = hp.dynamic[:len(hp.dynamic)-1]
		ReleaseHeaderField(last)
	}
}

func (hp *HPACK) addDynamic(key, value string) {
	hf := AcquireHeaderField()
	hf.SetKey(key)
	hf.SetValue(value)

	entry := make([]*HeaderField, 0, len(hp.dynamic)+1)
	entry = append(entry, hf)
	hp.dynamic = append(entry, hp.dynamic...)
	hp.tableSize += hf.Size()

	hp.evict()
}

// getByIndex resolves a combined static/dynamic table index (1-based) as
// defined by https://tools.ietf.org/html/rfc7541#section-2.3.3
func (hp *HPACK) getByIndex(i uint64) (name, value string, ok bool) {
	if i == 0 {
		return "", "", false
	}
	if i <= uint64(len(staticTable)) {
		e := staticTable[i-1]
		return e.name, e.value, true
	}
	di := int(i) - len(staticTable) - 1
	if di < 0 || di >= len(hp.dynamic) {
		return "", "", false
	}
	hf := hp.dynamic[di]
	return hf.Key(), hf.Value(), true
}

// search looks for key/value across the static table followed by the
// dynamic table, returning the combined index of an exact match (full) and,
// failing that, the first entry whose name alone matches (nameOnly). Either
// may be 0 if no such entry exists.
func (hp *HPACK) search(key, value string) (full, nameOnly int) {
	for i, e := range staticTable {
		if e.name != key {
			continue
		}
		idx := i + 1
		if nameOnly == 0 {
			nameOnly = idx
		}
		if e.value == value {
			return idx, nameOnly
		}
	}

	base := len(staticTable)
	for i, hf := range hp.dynamic {
		if hf.Key() != key {
			continue
		}
		idx := base + i + 1
		if nameOnly == 0 {
			nameOnly = idx
		}
		if hf.Value() == value {
			return idx, nameOnly
		}
	}

	return 0, nameOnly
}

func (hp *HPACK) appendField(name, value string, sensible bool) {
	hf := AcquireHeaderField()
	hf.SetKey(name)
	hf.SetValue(value)
	hf.SetSensible(sensible)
	hp.fields = append(hp.fields, hf)
}

// Add queues a header field to be encoded by the next Write call.
func (hp *HPACK) Add(key, value string) {
	hf := AcquireHeaderField()
	hf.SetKey(key)
	hf.SetValue(value)
	hp.toAdd = append(hp.toAdd, hf)
}

// AddBytes is the []byte counterpart of Add.
func (hp *HPACK) AddBytes(key, value []byte) {
	hp.Add(b2s(key), b2s(value))
}

// Read decodes every header representation in b, appending each decoded
// field to hp.fields and updating the dynamic table as RFC 7541 requires.
// It returns any bytes it couldn't consume, which is only ever non-empty
// on error.
func (hp *HPACK) Read(b []byte) ([]byte, error) {
	for len(b) > 0 {
		var name, value string
		var sensible bool
		var err error

		b, name, value, sensible, err = hp.decodeOne(b)
		if err != nil {
			return b, err
		}
		if len(name) > 0 {
			hp.appendField(name, value, sensible)
		}
	}
	return b, nil
}

// Next decodes a single header representation from the start of b into hf
// and returns the unconsumed remainder. hf is left empty, with no error,
// when b starts with a dynamic table size update, since that representation
// carries no header field.
func (hp *HPACK) Next(hf *HeaderField, b []byte) ([]byte, error) {
	b, name, value, sensible, err := hp.decodeOne(b)
	if err != nil {
		return b, err
	}

	hf.SetKey(name)
	hf.SetValue(value)
	hf.SetSensible(sensible)

	return b, nil
}

func (hp *HPACK) decodeOne(b []byte) (rest []byte, name, value string, sensible bool, err error) {
	c := b[0]

	switch {
	// Indexed header field: https://tools.ietf.org/html/rfc7541#section-6.1
	case c&0x80 == 0x80:
		var idx uint64
		b, idx, err = readInt(7, b)
		if err != nil {
			return b, "", "", false, err
		}
		name, value, ok := hp.getByIndex(idx)
		if !ok {
			return b, "", "", false, ErrInvalidIndex
		}
		return b, name, value, false, nil

	// Literal with incremental indexing: https://tools.ietf.org/html/rfc7541#section-6.2.1
	case c&0xc0 == 0x40:
		return hp.decodeLiteral(b, 6, true, false)

	// Dynamic table size update: https://tools.ietf.org/html/rfc7541#section-6.3
	case c&0xe0 == 0x20:
		var n uint64
		b, n, err = readInt(5, b)
		if err != nil {
			return b, "", "", false, err
		}
		hp.SetMaxTableSize(int(n))
		return b, "", "", false, nil

	// Literal never indexed: https://tools.ietf.org/html/rfc7541#section-6.2.3
	case c&0xf0 == 0x10:
		return hp.decodeLiteral(b, 4, false, true)

	// Literal without indexing: https://tools.ietf.org/html/rfc7541#section-6.2.2
	default:
		return hp.decodeLiteral(b, 4, false, false)
	}
}

func (hp *HPACK) decodeLiteral(b []byte, n int, index, sensible bool) (rest []byte, name, value string, sens bool, err error) {
	b, idx, err := readInt(n, b)
	if err != nil {
		return b, "", "", false, err
	}

	if idx == 0 {
		var nameBytes []byte
		nameBytes, b, err = readString(nil, b)
		if err != nil {
			return b, "", "", false, err
		}
		name = string(nameBytes)
	} else {
		var ok bool
		name, _, ok = hp.getByIndex(idx)
		if !ok {
			return b, "", "", false, ErrInvalidIndex
		}
	}

	var valueBytes []byte
	valueBytes, b, err = readString(nil, b)
	if err != nil {
		return b, "", "", false, err
	}
	value = string(valueBytes)

	if index {
		hp.addDynamic(name, value)
	}

	return b, name, value, sensible, nil
}

// Write encodes every field queued by Add, appending the encoded header
// block to dst. Each field goes through AppendHeader with store set: a field
// that matches a static or dynamic table entry exactly is emitted as an
// indexed header field; any other field is emitted as a literal with
// incremental indexing, referencing the table by name where possible, and is
// inserted into the dynamic table.
func (hp *HPACK) Write(dst []byte) ([]byte, error) {
	for _, hf := range hp.toAdd {
		dst = hp.AppendHeader(dst, hf, true)
		ReleaseHeaderField(hf)
	}
	hp.toAdd = hp.toAdd[:0]

	return dst, nil
}

// AppendHeader encodes a single field into dst. A field already present in
// the static or dynamic table with the same value is emitted as an indexed
// header field; otherwise it is a literal, referencing the table by name
// where possible.
//
// A field marked sensible (https://tools.ietf.org/html/rfc7541#section-7.1.3)
// is always emitted as literal never indexed and never stored. Otherwise,
// when store is true, the field is emitted as literal with incremental
// indexing and inserted into the dynamic table; when false, as literal
// without indexing.
func (hp *HPACK) AppendHeader(dst []byte, hf *HeaderField, store bool) []byte {
	key, value := hf.Key(), hf.Value()
	sensible := hf.IsSensible()
	full, nameOnly := hp.search(key, value)

	if full > 0 && !sensible {
		nn := len(dst)
		dst = encodeInt(dst, 7, uint64(full))
		dst[nn] |= 0x80
		return dst
	}

	huffman := !hp.DisableCompression
	store = store && !sensible

	nn := len(dst)
	switch {
	case sensible:
		dst = encodeInt(dst, 4, uint64(nameOnly))
		dst[nn] |= 0x10
	case store:
		dst = encodeInt(dst, 6, uint64(nameOnly))
		dst[nn] |= 0x40
	default:
		dst = encodeInt(dst, 4, uint64(nameOnly))
	}

	if nameOnly == 0 {
		dst = writeString(dst, s2b(key), huffman)
	}
	dst = writeString(dst, s2b(value), huffman)

	if store {
		hp.addDynamic(key, value)
	}

	return dst
}

// encodeInt appends the n-bit-prefix encoding of i to dst.
// https://tools.ietf.org/html/rfc7541#section-5.1
func encodeInt(dst []byte, n uint, i uint64) []byte {
	max := uint64(1<<n) - 1
	if i < max {
		return append(dst, byte(i))
	}
	dst = append(dst, byte(max))
	i -= max
	for i >= 128 {
		dst = append(dst, byte(0x80|(i&0x7f)))
		i >>= 7
	}
	return append(dst, byte(i))
}

// appendInt encodes i with an n-bit prefix into a fresh buffer built from
// dst's backing array.
func appendInt(dst []byte, n uint, i uint64) []byte {
	return encodeInt(dst[:0], n, i)
}

// writeInt encodes i with an n-bit prefix into dst, reusing dst's capacity
// and overwriting from the start regardless of dst's prior contents.
func writeInt(dst []byte, n uint, i uint64) []byte {
	max := uint64(1<<n) - 1

	dst = Resize(dst, 1)
	if i < max {
		dst[0] = byte(i)
		return dst
	}

	dst[0] = byte(max)
	i -= max
	pos := 1
	for i >= 128 {
		dst = Resize(dst, pos+1)
		dst[pos] = byte(0x80 | (i & 0x7f))
		i >>= 7
		pos++
	}
	dst = Resize(dst, pos+1)
	dst[pos] = byte(i)
	return dst
}

// readInt reads an n-bit-prefix integer from the start of b, returning the
// unconsumed remainder.
func readInt(n int, b []byte) ([]byte, uint64, error) {
	if len(b) == 0 {
		return b, 0, ErrMissingBytes
	}

	mask := uint64(1<<uint(n)) - 1
	num := uint64(b[0]) & mask
	if num < mask {
		return b[1:], num, nil
	}

	nn := 1
	var m uint
	for nn < len(b) {
		c := b[nn]
		nn++
		num += uint64(c&0x7f) << m
		if num > maxHpackInt {
			return b[nn:], 0, ErrBitOverflow
		}
		if c&0x80 != 0x80 {
			break
		}
		m += 7
		if m >= 63 {
			return b[nn:], 0, ErrBitOverflow
		}
	}

	return b[nn:], num, nil
}

// readIntFrom is the bufio.Reader counterpart of readInt, for callers that
// haven't buffered the whole header block fragment yet.
func readIntFrom(n int, br *bufio.Reader) (uint64, error) {
	c, err := br.ReadByte()
	if err != nil {
		return 0, err
	}

	mask := uint64(1<<uint(n)) - 1
	num := uint64(c) & mask
	if num < mask {
		return num, nil
	}

	var m uint
	for {
		c, err = br.ReadByte()
		if err != nil {
			return 0, err
		}
		num += uint64(c&0x7f) << m
		if num > maxHpackInt {
			return 0, ErrBitOverflow
		}
		if c&0x80 != 0x80 {
			break
		}
		m += 7
		if m >= 63 {
			return 0, ErrBitOverflow
		}
	}

	return num, nil
}

// writeString appends the length-prefixed, optionally Huffman-encoded
// representation of src to dst. https://tools.ietf.org/html/rfc7541#section-5.2
func writeString(dst, src []byte, huffman bool) []byte {
	if !huffman {
		return append(encodeInt(dst, 7, uint64(len(src))), src...)
	}

	hlen := HuffmanEncodedLen(src)
	nn := len(dst)
	dst = encodeInt(dst, 7, uint64(hlen))
	dst = HuffmanEncode(dst, src)
	dst[nn] |= 0x80
	return dst
}

// readString decodes the length-prefixed string at the start of src,
// appending it to dst, and returns the unconsumed remainder of src.
func readString(dst, src []byte) ([]byte, []byte, error) {
	if len(src) == 0 {
		return dst, src, ErrMissingBytes
	}

	huffman := src[0]&0x80 == 0x80

	var length uint64
	var err error
	src, length, err = readInt(7, src)
	if err != nil {
		return dst, src, err
	}
	if uint64(len(src)) < length {
		return dst, src, ErrShortString
	}

	data := src[:length]
	rest := src[length:]

	if huffman {
		dst, err = HuffmanDecode(dst, data)
	} else {
		dst = append(dst, data...)
	}

	return dst, rest, err
}
