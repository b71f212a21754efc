package http2

// SettingID identifies a SETTINGS parameter.
// https://tools.ietf.org/html/rfc7540#section-6.5.2
type SettingID uint16

const (
	SettingHeaderTableSize      SettingID = 0x1
	SettingEnablePush           SettingID = 0x2
	SettingMaxConcurrentStreams SettingID = 0x3
	SettingInitialWindowSize    SettingID = 0x4
	SettingMaxFrameSize         SettingID = 0x5
	SettingMaxHeaderListSize    SettingID = 0x6
)

const (
	defaultHeaderTableSize   uint32 = 4096
	defaultConcurrentStreams uint32 = 100
	defaultWindowSize        uint32 = 1<<16 - 1
	defaultMaxFrameSize      uint32 = 1 << 14

	settingEntrySize = 6 // 2-byte id + 4-byte value
)

// SettingEntry is a single (id, value) pair carried on a SETTINGS frame.
type SettingEntry struct {
	ID    SettingID
	Value uint32
}

// Settings is the SETTINGS frame payload: an ordered sequence of entries
// advertising or acknowledging connection parameters.
//
// Unlike a map, entries preserve the wire order they were decoded in (or
// were Add()ed in), since a sender may legally repeat a setting id and only
// the last occurrence applies.
// https://tools.ietf.org/html/rfc7540#section-6.5
type Settings struct {
	entries []SettingEntry
	ack     bool
}

func (st *Settings) Type() FrameType {
	return FrameSettings
}

func (st *Settings) Reset() {
	st.entries = st.entries[:0]
	st.ack = false
}

// CopyTo copies st into s, preserving entry order.
func (st *Settings) CopyTo(s *Settings) {
	s.entries = append(s.entries[:0], st.entries...)
	s.ack = st.ack
}

// IsAck reports whether this frame acknowledges the peer's settings.
func (st *Settings) IsAck() bool {
	return st.ack
}

// SetAck marks this frame as a SETTINGS acknowledgement. An ack frame must
// carry no entries. https://tools.ietf.org/html/rfc7540#section-6.5
func (st *Settings) SetAck(ack bool) {
	st.ack = ack
}

// Entries returns the ordered (id, value) pairs decoded from, or queued
// onto, this frame.
func (st *Settings) Entries() []SettingEntry {
	return st.entries
}

// Add appends a (id, value) entry, as a sender does to build an outgoing
// SETTINGS frame.
func (st *Settings) Add(id SettingID, value uint32) {
	st.entries = append(st.entries, SettingEntry{ID: id, Value: value})
}

// Get returns the value of the last entry with the given id, following the
// rule that a later occurrence overrides an earlier one on the same frame.
func (st *Settings) Get(id SettingID) (uint32, bool) {
	found := false
	var value uint32
	for _, e := range st.entries {
		if e.ID == id {
			value = e.Value
			found = true
		}
	}
	return value, found
}

// Deserialize decodes fr's payload into st. An ACK frame must carry an empty
// payload; a non-ACK frame's payload must be a multiple of 6 bytes.
func (st *Settings) Deserialize(fr *FrameHeader) error {
	st.ack = fr.Flags()&FlagAck == FlagAck
	payload := fr.payload

	if st.ack {
		if len(payload) != 0 {
			return newErr(KindInvalidLength, "SETTINGS ack frame must be empty")
		}
		return nil
	}

	if len(payload)%settingEntrySize != 0 {
		return newErr(KindInvalidLength, "SETTINGS payload not a multiple of 6")
	}

	st.entries = st.entries[:0]
	for i := 0; i+settingEntrySize <= len(payload); i += settingEntrySize {
		b := payload[i : i+settingEntrySize]
		id := SettingID(uint16(b[0])<<8 | uint16(b[1]))
		value := uint32(b[2])<<24 | uint32(b[3])<<16 | uint32(b[4])<<8 | uint32(b[5])
		st.entries = append(st.entries, SettingEntry{ID: id, Value: value})
	}

	return nil
}

// Serialize encodes st into fr. An ACK frame is encoded with an empty
// payload and the ACK flag set.
func (st *Settings) Serialize(fr *FrameHeader) {
	if st.ack {
		fr.SetFlags(fr.Flags() | FlagAck)
		fr.payload = fr.payload[:0]
		return
	}

	fr.payload = fr.payload[:0]

	for _, e := range st.entries {
		fr.payload = append(fr.payload,
			byte(e.ID>>8), byte(e.ID),
			byte(e.Value>>24), byte(e.Value>>16), byte(e.Value>>8), byte(e.Value),
		)
	}
}
