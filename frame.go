package http2

import "sync"

// Frame is the interface every frame payload (Data, Headers, Priority,
// RstStream, Settings, PushPromise, Ping, GoAway, WindowUpdate, Continuation)
// implements. https://tools.ietf.org/html/rfc7540#section-4
type Frame interface {
	// Type returns the frame type this payload encodes as.
	Type() FrameType

	// Reset resets the payload so it can be reused from a pool.
	Reset()

	// Deserialize reads the payload from fr's raw bytes, using fr's flags
	// (PADDED, PRIORITY, END_HEADERS, END_STREAM, ...) to interpret it.
	Deserialize(fr *FrameHeader) error

	// Serialize encodes the payload into fr, setting any flags the payload
	// representation implies.
	Serialize(fr *FrameHeader)
}

var (
	dataPool         sync.Pool
	headersPool      sync.Pool
	priorityPool     sync.Pool
	rstStreamPool    sync.Pool
	settingsPool     sync.Pool
	pushPromisePool  sync.Pool
	pingPool         sync.Pool
	goAwayPool       sync.Pool
	windowUpdatePool sync.Pool
	continuationPool sync.Pool
	unknownPool      sync.Pool
)

// unknownFrame is used for any FrameType this codec does not recognize. Per
// RFC 7540 §4.1, unknown frame types must be ignored by the receiver, not
// rejected.
type unknownFrame struct {
	kind FrameType
	b    []byte
}

func (u *unknownFrame) Type() FrameType { return u.kind }
func (u *unknownFrame) Reset()          { u.kind = 0; u.b = u.b[:0] }

func (u *unknownFrame) Deserialize(fr *FrameHeader) error {
	u.kind = fr.Type()
	u.b = append(u.b[:0], fr.payload...)
	return nil
}

func (u *unknownFrame) Serialize(fr *FrameHeader) {
	fr.payload = append(fr.payload[:0], u.b...)
}

// AcquireFrame returns a pooled Frame payload for kind, ready to be
// deserialized into.
func AcquireFrame(kind FrameType) Frame {
	switch kind {
	case FrameData:
		fr, ok := dataPool.Get().(*Data)
		if !ok {
			fr = &Data{}
		}
		return fr
	case FrameHeaders:
		fr, ok := headersPool.Get().(*Headers)
		if !ok {
			fr = &Headers{}
		}
		return fr
	case FramePriority:
		fr, ok := priorityPool.Get().(*Priority)
		if !ok {
			fr = &Priority{}
		}
		return fr
	case FrameRstStream:
		fr, ok := rstStreamPool.Get().(*RstStream)
		if !ok {
			fr = &RstStream{}
		}
		return fr
	case FrameSettings:
		fr, ok := settingsPool.Get().(*Settings)
		if !ok {
			fr = &Settings{}
		}
		return fr
	case FramePushPromise:
		fr, ok := pushPromisePool.Get().(*PushPromise)
		if !ok {
			fr = &PushPromise{}
		}
		return fr
	case FramePing:
		fr, ok := pingPool.Get().(*Ping)
		if !ok {
			fr = &Ping{}
		}
		return fr
	case FrameGoAway:
		fr, ok := goAwayPool.Get().(*GoAway)
		if !ok {
			fr = &GoAway{}
		}
		return fr
	case FrameWindowUpdate:
		fr, ok := windowUpdatePool.Get().(*WindowUpdate)
		if !ok {
			fr = &WindowUpdate{}
		}
		return fr
	case FrameContinuation:
		fr, ok := continuationPool.Get().(*Continuation)
		if !ok {
			fr = &Continuation{}
		}
		return fr
	}

	fr, ok := unknownPool.Get().(*unknownFrame)
	if !ok {
		fr = &unknownFrame{}
	}
	fr.kind = kind
	return fr
}

// ReleaseFrame resets fr and returns it to its pool. fr may be nil, in which
// case ReleaseFrame is a no-op.
func ReleaseFrame(fr Frame) {
	if fr == nil {
		return
	}
	fr.Reset()

	switch f := fr.(type) {
	case *Data:
		dataPool.Put(f)
	case *Headers:
		headersPool.Put(f)
	case *Priority:
		priorityPool.Put(f)
	case *RstStream:
		rstStreamPool.Put(f)
	case *Settings:
		settingsPool.Put(f)
	case *PushPromise:
		pushPromisePool.Put(f)
	case *Ping:
		pingPool.Put(f)
	case *GoAway:
		goAwayPool.Put(f)
	case *WindowUpdate:
		windowUpdatePool.Put(f)
	case *Continuation:
		continuationPool.Put(f)
	case *unknownFrame:
		unknownPool.Put(f)
	}
}
