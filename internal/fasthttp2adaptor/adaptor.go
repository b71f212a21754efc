// Package fasthttp2adaptor maps decoded HTTP/2 header fields onto a
// fasthttp.Request, and encodes a fasthttp.Response's status, content-length
// and headers as an HPACK header block. It does not handle DATA payloads. It
// owns no socket and drives no stream state machine: callers decode a header
// block themselves and hand the resulting fields here, mirroring the
// teacher's adaptor.go without the connection loop it used to be wired into.
package fasthttp2adaptor

import (
	"bytes"
	"strconv"

	h2wire "github.com/kavuri/h2wire"
	"github.com/valyala/fasthttp"
)

// FillRequest copies one decoded HPACK header field onto req, translating
// HTTP/2 pseudo-headers (:method, :path, :scheme, :authority) into their
// fasthttp.Request equivalents. Call once per field while walking a decoded
// header block.
func FillRequest(hf *h2wire.HeaderField, req *fasthttp.Request) {
	k, v := hf.KeyBytes(), hf.ValueBytes()
	if !hf.IsPseudo() &&
		!(bytes.Equal(k, h2wire.StringUserAgent) ||
			bytes.Equal(k, h2wire.StringContentType)) {
		req.Header.AddBytesKV(k, v)
		return
	}

	if hf.IsPseudo() {
		if bytes.Equal(k, h2wire.StringPath) {
			req.SetRequestURIBytes(v)
			return
		}

		k = k[1:]
	}

	if len(k) == 0 {
		return
	}

	switch k[0] {
	case 'm': // method
		req.Header.SetMethodBytes(v)
	case 's': // scheme
		req.URI().SetSchemeBytes(v)
	case 'a': // authority
		req.URI().SetHostBytes(v)
		req.Header.AddBytesV("Host", v)
	case 'u': // user-agent
		req.Header.SetUserAgentBytes(v)
	case 'c': // content-type
		req.Header.SetContentTypeBytes(v)
	}
}

// EncodeResponse appends the HPACK representation of res's status line,
// content-length and headers to dst, using hp as the encoder context. It
// performs no framing: the caller still splits the result across
// HEADERS/CONTINUATION frames and prepends frame headers.
func EncodeResponse(dst []byte, hp *h2wire.HPACK, res *fasthttp.Response) []byte {
	hf := h2wire.AcquireHeaderField()
	defer h2wire.ReleaseHeaderField(hf)

	hf.SetKeyBytes(h2wire.StringStatus)
	hf.SetValue(strconv.FormatInt(int64(res.Header.StatusCode()), 10))
	dst = hp.AppendHeader(dst, hf, true)

	hf.SetKeyBytes(h2wire.StringContentLength)
	hf.SetValue(strconv.FormatInt(int64(len(res.Body())), 10))
	dst = hp.AppendHeader(dst, hf, true)

	res.Header.VisitAll(func(k, v []byte) {
		hf.SetBytes(bytes.ToLower(k), v)
		dst = hp.AppendHeader(dst, hf, true)
	})

	return dst
}
