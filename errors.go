package http2

import "fmt"

// Kind identifies the category of a CodecError, following the error
// taxonomy this codec reports instead of a single opaque error type.
type Kind uint8

const (
	KindInvalidLength Kind = iota
	KindInvalidPayloadType
	KindInvalidIntegerEncoding
	KindInvalidStringEncoding
	KindInvalidIndex
	KindHuffmanDecodingError
	KindHuffmanEncodingError
	KindInvalidHTTP
	KindInvalidHTTPMethod
	KindParseHeaderError
	KindParseBodyError
	KindParseFormDataError
	KindFormdataBoundaryNotFound
)

var kindNames = [...]string{
	"InvalidLength",
	"InvalidPayloadType",
	"InvalidIntegerEncoding",
	"InvalidStringEncoding",
	"InvalidIndex",
	"HuffmanDecodingError",
	"HuffmanEncodingError",
	"InvalidHttp",
	"InvalidHttpMethod",
	"ParseHeaderError",
	"ParseBodyError",
	"ParseFormDataError",
	"FormdataBoundaryNotFound",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UnknownKind"
}

// CodecError is the error type the codecs in this module use for malformed
// input. It carries the taxonomy Kind from spec.md §7 plus a free-form detail
// string; higher layers translate Kind to protocol-level codes (for example
// mapping HPACK failures to an HTTP/2 COMPRESSION_ERROR GoAway). A pad length
// that does not fit a PADDED payload is reported as http2utils.ErrShortPadding,
// a plain error rather than a CodecError, and errors from the underlying
// reader are returned unchanged.
type CodecError struct {
	Kind   Kind
	Detail string
}

func (e *CodecError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// newErr builds a *CodecError, mirroring the teacher's errHTTP2{err,
// frameToSend} wrapper in http2.go but carrying a taxonomy Kind instead of a
// frame type to send.
func newErr(kind Kind, detail string) *CodecError {
	return &CodecError{Kind: kind, Detail: detail}
}

// Sentinel errors for the common failure modes, grounded on errors.go's
// ErrUnknowFrameType / ErrBadPreface / ErrPayloadExceeds family. These are
// returned as-is (not wrapped further) when no extra detail helps the
// caller; everything else goes through newErr above.
var (
	ErrMissingBytes     = newErr(KindInvalidLength, "not enough bytes for payload")
	ErrPayloadExceeds   = newErr(KindInvalidLength, "frame payload exceeds the negotiated maximum size")
	ErrUnknownFrameType = newErr(KindInvalidPayloadType, "unknown frame type")
	ErrBadPreface       = newErr(KindInvalidHTTP, "connection preface mismatch")
	ErrBitOverflow      = newErr(KindInvalidIntegerEncoding, "integer continuation exceeds 32 bits")
	ErrHuffmanPadding   = newErr(KindHuffmanDecodingError, "invalid Huffman padding")
	ErrHuffmanEOS       = newErr(KindHuffmanDecodingError, "EOS symbol decoded from payload")
	ErrHuffmanNoMatch   = newErr(KindHuffmanDecodingError, "no matching Huffman code")
	ErrInvalidIndex     = newErr(KindInvalidIndex, "HPACK index refers to an absent entry")
	ErrShortString      = newErr(KindInvalidStringEncoding, "HPACK string length overruns buffer")
)

// ErrorCode is an HTTP/2 protocol error code, sent on RST_STREAM and
// GOAWAY frames. https://tools.ietf.org/html/rfc7540#section-7
type ErrorCode uint32

const (
	NoError              ErrorCode = 0x0
	ProtocolError        ErrorCode = 0x1
	InternalError        ErrorCode = 0x2
	FlowControlError     ErrorCode = 0x3
	SettingsTimeoutError ErrorCode = 0x4
	StreamClosedError    ErrorCode = 0x5
	FrameSizeError       ErrorCode = 0x6
	RefusedStreamError   ErrorCode = 0x7
	CancelError          ErrorCode = 0x8
	CompressionError     ErrorCode = 0x9
	ConnectError         ErrorCode = 0xa
	EnhanceYourCalm      ErrorCode = 0xb
	InadequateSecurity   ErrorCode = 0xc
	HTTP11Required       ErrorCode = 0xd
)

var errorCodeNames = [...]string{
	"NO_ERROR",
	"PROTOCOL_ERROR",
	"INTERNAL_ERROR",
	"FLOW_CONTROL_ERROR",
	"SETTINGS_TIMEOUT",
	"STREAM_CLOSED",
	"FRAME_SIZE_ERROR",
	"REFUSED_STREAM",
	"CANCEL",
	"COMPRESSION_ERROR",
	"CONNECT_ERROR",
	"ENHANCE_YOUR_CALM",
	"INADEQUATE_SECURITY",
	"HTTP_1_1_REQUIRED",
}

// String returns the RFC 7540 §11.4 registry name of the error code.
func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("UNKNOWN(0x%x)", uint32(c))
}

// NewError builds an error from an ErrorCode, attaching detail (for example
// GOAWAY debug data) the way RST_STREAM/GOAWAY carry one today.
func NewError(code ErrorCode, detail string) error {
	if detail == "" {
		return fmt.Errorf("http2: %s", code)
	}
	return fmt.Errorf("http2: %s: %s", code, detail)
}
