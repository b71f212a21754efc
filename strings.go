package http2

import (
	"github.com/kavuri/h2wire/http2utils"
)

// b2s converts b to a string without copying.
func b2s(b []byte) string {
	return http2utils.FastBytesToString(b)
}

// s2b converts s to a byte slice without copying. The result must not be
// mutated.
func s2b(s string) []byte {
	return http2utils.FastStringToBytes(s)
}

// equalsFold reports whether a and b are equal ignoring ASCII case.
func equalsFold(a, b []byte) bool {
	return http2utils.EqualsFold(a, b)
}

var (
	strGET          = StringGET
	strHEAD         = StringHEAD
	strPOST         = StringPOST
	strAuthority    = StringAuthority
	strMethod       = StringMethod
	strPath         = StringPath
	strScheme       = StringScheme
	strStatus       = StringStatus
	strUserAgent    = StringUserAgent
	strContentType  = StringContentType
	strContentLength = StringContentLength
)

var (
	StringPath          = []byte(":path")
	StringStatus        = []byte(":status")
	StringAuthority     = []byte(":authority")
	StringScheme        = []byte(":scheme")
	StringMethod        = []byte(":method")
	StringServer        = []byte("server")
	StringContentLength = []byte("content-length")
	StringContentType   = []byte("content-type")
	StringUserAgent     = []byte("user-agent")
	StringGzip          = []byte("gzip")
	StringGET           = []byte("GET")
	StringHEAD          = []byte("HEAD")
	StringPOST          = []byte("POST")
	StringHTTP2         = []byte("HTTP/2")
)

func ToLower(b []byte) []byte {
	for i := range b {
		b[i] |= 32
	}

	return b
}

const (
	// H2TLSProto is the string used in ALPN-TLS negotiation.
	H2TLSProto = "h2"
	// H2Clean is the string used in HTTP headers by the client to upgrade the connection.
	H2Clean = "h2c"
)
