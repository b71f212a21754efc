package http2

import (
	"github.com/kavuri/h2wire/http2utils"
)

var _ Frame = &PushPromise{}

// PushPromise https://tools.ietf.org/html/rfc7540#section-6.6
type PushPromise struct {
	pad    bool
	ended  bool
	stream uint32
	header []byte // header block fragment
}

func (pp *PushPromise) Type() FrameType {
	return FramePushPromise
}

func (pp *PushPromise) Reset() {
	pp.pad = false
	pp.ended = false
	pp.stream = 0
	pp.header = pp.header[:0]
}

// Stream returns the promised stream id.
func (pp *PushPromise) Stream() uint32 {
	return pp.stream
}

// SetStream sets the promised stream id.
func (pp *PushPromise) SetStream(stream uint32) {
	pp.stream = stream & maxUint31
}

// EndHeaders reports whether this frame ends the header block.
func (pp *PushPromise) EndHeaders() bool {
	return pp.ended
}

// SetEndHeaders sets whether this frame ends the header block.
func (pp *PushPromise) SetEndHeaders(value bool) {
	pp.ended = value
}

// Padding reports whether this frame will be sent padded.
func (pp *PushPromise) Padding() bool {
	return pp.pad
}

// SetPadding sets whether this frame will be sent padded.
func (pp *PushPromise) SetPadding(value bool) {
	pp.pad = value
}

func (pp *PushPromise) Header() []byte {
	return pp.header
}

func (pp *PushPromise) SetHeader(h []byte) {
	pp.header = append(pp.header[:0], h...)
}

func (pp *PushPromise) Write(b []byte) (int, error) {
	n := len(b)
	pp.header = append(pp.header, b...)
	return n, nil
}

func (pp *PushPromise) Deserialize(fr *FrameHeader) error {
	payload := fr.payload
	pp.pad = fr.Flags().Has(FlagPadded)

	if pp.pad {
		var err error
		payload, err = http2utils.CutPadding(payload, fr.Len())
		if err != nil {
			return err
		}
	}

	if len(payload) < 4 {
		return ErrMissingBytes
	}

	pp.stream = http2utils.BytesToUint32(payload) & maxUint31
	pp.header = append(pp.header[:0], payload[4:]...)
	pp.ended = fr.Flags().Has(FlagEndHeaders)

	return nil
}

func (pp *PushPromise) Serialize(fr *FrameHeader) {
	if pp.ended {
		fr.SetFlags(fr.Flags().Add(FlagEndHeaders))
	}

	content := Resize(nil, 4+len(pp.header))
	http2utils.Uint32ToBytes(content[:4], pp.stream)
	copy(content[4:], pp.header)

	if pp.pad {
		fr.SetFlags(fr.Flags().Add(FlagPadded))
		content = http2utils.AddPadding(content)
	}

	fr.payload = append(fr.payload[:0], content...)
}
