package http2

import (
	"github.com/kavuri/h2wire/http2utils"
)

var (
	_ Frame            = &Headers{}
	_ FrameWithHeaders = &Headers{}
)

type FrameWithHeaders interface {
	Headers() []byte
}

// Headers defines a FrameHeaders
//
// https://tools.ietf.org/html/rfc7540#section-6.2
type Headers struct {
	hasPadding bool
	hasWeight  bool
	exclusive  bool
	stream     uint32 // stream dependency, only meaningful when hasWeight
	weight     uint8
	endStream  bool
	endHeaders bool
	rawHeaders []byte // this field is used to store uncompleted headers.
}

// Reset ...
func (h *Headers) Reset() {
	h.hasPadding = false
	h.hasWeight = false
	h.exclusive = false
	h.stream = 0
	h.weight = 0
	h.endStream = false
	h.endHeaders = false
	h.rawHeaders = h.rawHeaders[:0]
}

// CopyTo copies h fields to h2.
func (h *Headers) CopyTo(h2 *Headers) {
	h2.hasPadding = h.hasPadding
	h2.hasWeight = h.hasWeight
	h2.exclusive = h.exclusive
	h2.stream = h.stream
	h2.weight = h.weight
	h2.endStream = h.endStream
	h2.endHeaders = h.endHeaders
	h2.rawHeaders = append(h2.rawHeaders[:0], h.rawHeaders...)
}

// Exclusive reports whether the stream dependency is exclusive.
func (h *Headers) Exclusive() bool {
	return h.exclusive
}

// SetExclusive sets the exclusive bit of the stream dependency.
func (h *Headers) SetExclusive(value bool) {
	h.exclusive = value
}

func (h *Headers) Type() FrameType {
	return FrameHeaders
}

// Headers ...
func (h *Headers) Headers() []byte {
	return h.rawHeaders
}

// SetHeaders ...
func (h *Headers) SetHeaders(b []byte) {
	h.rawHeaders = append(h.rawHeaders[:0], b...)
}

// AppendRawHeaders appends b to the raw headers.
func (h *Headers) AppendRawHeaders(b []byte) {
	h.rawHeaders = append(h.rawHeaders, b...)
}

func (h *Headers) AppendHeaderField(hp *HPACK, hf *HeaderField, store bool) {
	h.rawHeaders = hp.AppendHeader(h.rawHeaders, hf, store)
}

// EndStream ...
func (h *Headers) EndStream() bool {
	return h.endStream
}

// SetEndStream ...
func (h *Headers) SetEndStream(value bool) {
	h.endStream = value
}

// EndHeaders ...
func (h *Headers) EndHeaders() bool {
	return h.endHeaders
}

// SetEndHeaders ...
func (h *Headers) SetEndHeaders(value bool) {
	h.endHeaders = value
}

// Stream ...
func (h *Headers) Stream() uint32 {
	return h.stream
}

// SetStream sets the stream dependency and marks the HEADERS frame as
// carrying priority fields.
func (h *Headers) SetStream(stream uint32) {
	h.stream = stream
	h.hasWeight = true
}

// Weight ...
func (h *Headers) Weight() byte {
	return h.weight
}

// SetWeight sets the dependency weight and marks the HEADERS frame as
// carrying priority fields.
func (h *Headers) SetWeight(w byte) {
	h.weight = w
	h.hasWeight = true
}

// Padding ...
func (h *Headers) Padding() bool {
	return h.hasPadding
}

// SetPadding ...
func (h *Headers) SetPadding(value bool) {
	h.hasPadding = value
}

func (h *Headers) Deserialize(frh *FrameHeader) (err error) {
	flags := frh.Flags()
	payload := frh.payload
	h.hasPadding = flags.Has(FlagPadded)

	if h.hasPadding {
		payload, err = http2utils.CutPadding(payload, frh.Len())
		if err != nil {
			return err
		}
	}

	h.hasWeight = flags.Has(FlagPriority)
	if h.hasWeight {
		if len(payload) < 5 { // 4 (dependency+exclusive) + 1 (weight) = 5
			return ErrMissingBytes
		}

		dep, exclusive := Uint31FromBytes(payload)
		h.stream = uint32(dep)
		h.exclusive = exclusive
		h.weight = payload[4]
		payload = payload[5:]
	}

	h.endStream = flags.Has(FlagEndStream)
	h.endHeaders = flags.Has(FlagEndHeaders)
	h.rawHeaders = append(h.rawHeaders[:0], payload...)

	return nil
}

func (h *Headers) Serialize(frh *FrameHeader) {
	if h.endStream {
		frh.SetFlags(
			frh.Flags().Add(FlagEndStream))
	}

	if h.endHeaders {
		frh.SetFlags(
			frh.Flags().Add(FlagEndHeaders))
	}

	content := h.rawHeaders

	if h.hasWeight {
		frh.SetFlags(
			frh.Flags().Add(FlagPriority))

		var depBytes [5]byte
		NewUint31(h.stream).ToBytes(depBytes[:4], h.exclusive)
		depBytes[4] = h.weight

		content = append(append([]byte(nil), depBytes[:]...), content...)
	}

	if h.hasPadding {
		frh.SetFlags(
			frh.Flags().Add(FlagPadded))
		content = http2utils.AddPadding(append([]byte(nil), content...))
	}

	frh.payload = append(frh.payload[:0], content...)
}
