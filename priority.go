package http2

var _ Frame = &Priority{}

// Priority represents the Priority frame.
//
// https://tools.ietf.org/html/rfc7540#section-6.3
type Priority struct {
	stream    uint32 // stream dependency
	exclusive bool
	weight    byte
}

func (pry *Priority) Type() FrameType {
	return FramePriority
}

// Reset resets priority fields.
func (pry *Priority) Reset() {
	pry.stream = 0
	pry.exclusive = false
	pry.weight = 0
}

func (pry *Priority) CopyTo(p *Priority) {
	p.stream = pry.stream
	p.exclusive = pry.exclusive
	p.weight = pry.weight
}

// Stream returns the stream dependency.
func (pry *Priority) Stream() uint32 {
	return pry.stream
}

// SetStream sets the stream dependency.
func (pry *Priority) SetStream(stream uint32) {
	pry.stream = stream & maxUint31
}

// Exclusive reports whether the dependency is exclusive.
func (pry *Priority) Exclusive() bool {
	return pry.exclusive
}

// SetExclusive sets the exclusive bit of the dependency.
func (pry *Priority) SetExclusive(value bool) {
	pry.exclusive = value
}

// Weight returns the Priority frame weight.
func (pry *Priority) Weight() byte {
	return pry.weight
}

// SetWeight sets the Priority frame weight.
func (pry *Priority) SetWeight(w byte) {
	pry.weight = w
}

func (pry *Priority) Deserialize(fr *FrameHeader) (err error) {
	if len(fr.payload) < 5 {
		return ErrMissingBytes
	}

	dep, exclusive := Uint31FromBytes(fr.payload)
	pry.stream = uint32(dep)
	pry.exclusive = exclusive
	pry.weight = fr.payload[4]

	return nil
}

func (pry *Priority) Serialize(fr *FrameHeader) {
	fr.payload = Resize(fr.payload[:0], 5)
	NewUint31(pry.stream).ToBytes(fr.payload[:4], pry.exclusive)
	fr.payload[4] = pry.weight
}
