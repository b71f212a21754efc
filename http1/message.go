package http1

import (
	"bytes"
	"strconv"

	h2wire "github.com/kavuri/h2wire"
	"github.com/valyala/bytebufferpool"
)

// Method is the closed set of HTTP/1.1 request methods the original source
// enumerated (original_source/src/http/http_message.rs's RequestMethod).
// spec.md's start-line grammar only names "METHOD"; this restores the
// concrete enumeration per SPEC_FULL.md's supplemented-features list.
type Method uint8

const (
	MethodInvalid Method = iota
	MethodCONNECT
	MethodDELETE
	MethodGET
	MethodHEAD
	MethodOPTIONS
	MethodPATCH
	MethodPOST
	MethodPUT
	MethodTRACE
)

var methodNames = [...]string{
	MethodInvalid: "",
	MethodCONNECT: "CONNECT",
	MethodDELETE:  "DELETE",
	MethodGET:     "GET",
	MethodHEAD:    "HEAD",
	MethodOPTIONS: "OPTIONS",
	MethodPATCH:   "PATCH",
	MethodPOST:    "POST",
	MethodPUT:     "PUT",
	MethodTRACE:   "TRACE",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return ""
}

// ParseMethod resolves a method token, returning MethodInvalid and false
// when s isn't one of the nine recognized methods.
func ParseMethod(s string) (Method, bool) {
	for m := MethodCONNECT; int(m) < len(methodNames); m++ {
		if methodNames[m] == s {
			return m, true
		}
	}
	return MethodInvalid, false
}

const httpVersion = "HTTP/1.1"

// Request is a parsed HTTP/1.1 request message: start line, ordered
// headers, and a body that is either raw bytes or a multipart/form-data
// structure (spec.md §3 "HTTP/1.1 message").
type Request struct {
	Method  Method
	Path    string
	Version string
	Headers Header
	Body    []byte

	Form *FormData
}

// Response is a parsed HTTP/1.1 response message.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    Header
	Body       []byte

	Form *FormData
}

// ParseRequest parses an HTTP/1.1 request per spec.md §4.9: a start line
// `METHOD SP path SP HTTP/1.1`, a CRLF-terminated header block, then a body
// whose interpretation depends on Content-Type.
func ParseRequest(b []byte) (*Request, error) {
	line, rest, err := readLine(b)
	if err != nil {
		return nil, err
	}

	methodTok, path, version, err := splitRequestLine(line)
	if err != nil {
		return nil, err
	}

	method, ok := ParseMethod(methodTok)
	if !ok {
		return nil, &h2wire.CodecError{Kind: h2wire.KindInvalidHTTPMethod, Detail: methodTok}
	}

	headers, body, err := parseHeaderBlockAndBody(rest)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:  method,
		Path:    path,
		Version: version,
		Headers: headers,
		Body:    body,
	}

	if ct, ok := headers.Get("Content-Type"); ok {
		if boundary, ok := multipartBoundary(ct); ok {
			form, err := ParseFormData(boundary, body)
			if err == nil {
				req.Form = form
			}
		}
	}

	return req, nil
}

// EncodeRequest serializes req as an HTTP/1.1 request.
func EncodeRequest(req *Request) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(req.Method.String())
	buf.WriteString(" ")
	buf.WriteString(req.Path)
	buf.WriteString(" ")
	version := req.Version
	if version == "" {
		version = httpVersion
	}
	buf.WriteString(version)
	buf.WriteString("\r\n")

	writeHeaderBlock(buf, req.Headers)
	buf.Write(req.Body)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// ParseResponse parses an HTTP/1.1 response: `HTTP/1.1 SP code SP reason`,
// where the reason phrase may itself contain spaces — the parser splits the
// first two tokens and takes the remainder as the reason (spec.md §4.9).
func ParseResponse(b []byte) (*Response, error) {
	line, rest, err := readLine(b)
	if err != nil {
		return nil, err
	}

	version, code, reason, err := splitStatusLine(line)
	if err != nil {
		return nil, err
	}

	headers, body, err := parseHeaderBlockAndBody(rest)
	if err != nil {
		return nil, err
	}

	res := &Response{
		Version:    version,
		StatusCode: code,
		Reason:     reason,
		Headers:    headers,
		Body:       body,
	}

	if ct, ok := headers.Get("Content-Type"); ok {
		if boundary, ok := multipartBoundary(ct); ok {
			form, err := ParseFormData(boundary, body)
			if err == nil {
				res.Form = form
			}
		}
	}

	return res, nil
}

// EncodeResponse serializes res as an HTTP/1.1 response.
func EncodeResponse(res *Response) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	version := res.Version
	if version == "" {
		version = httpVersion
	}
	buf.WriteString(version)
	buf.WriteString(" ")
	buf.WriteString(strconv.Itoa(res.StatusCode))
	buf.WriteString(" ")
	buf.WriteString(res.Reason)
	buf.WriteString("\r\n")

	writeHeaderBlock(buf, res.Headers)
	buf.Write(res.Body)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func writeHeaderBlock(buf *bytebufferpool.ByteBuffer, h Header) {
	for _, f := range h {
		buf.WriteString(f.Key.String())
		buf.WriteString(": ")
		buf.WriteString(f.Value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")
}

// readLine splits b at the first CRLF, returning the line (without the
// CRLF) and the remainder.
func readLine(b []byte) (line, rest []byte, err error) {
	i := bytes.Index(b, []byte("\r\n"))
	if i < 0 {
		return nil, nil, &h2wire.CodecError{Kind: h2wire.KindInvalidHTTP, Detail: "missing CRLF in start line"}
	}
	return b[:i], b[i+2:], nil
}

func splitRequestLine(line []byte) (method, path, version string, err error) {
	parts := bytes.SplitN(line, []byte(" "), 3)
	if len(parts) != 3 {
		return "", "", "", &h2wire.CodecError{Kind: h2wire.KindInvalidHTTP, Detail: "malformed request line"}
	}
	return string(parts[0]), string(parts[1]), string(parts[2]), nil
}

func splitStatusLine(line []byte) (version string, code int, reason string, err error) {
	parts := bytes.SplitN(line, []byte(" "), 3)
	if len(parts) != 3 {
		return "", 0, "", &h2wire.CodecError{Kind: h2wire.KindInvalidHTTP, Detail: "malformed status line"}
	}
	n, err := strconv.Atoi(string(parts[1]))
	if err != nil {
		return "", 0, "", &h2wire.CodecError{Kind: h2wire.KindInvalidHTTP, Detail: "invalid status code"}
	}
	return string(parts[0]), n, string(parts[2]), nil
}

// parseHeaderBlockAndBody parses CRLF-terminated header lines up to the
// blank line that ends the header block, then treats everything after it
// as the body.
func parseHeaderBlockAndBody(b []byte) (Header, []byte, error) {
	var headers Header

	for {
		i := bytes.Index(b, []byte("\r\n"))
		if i < 0 {
			return nil, nil, &h2wire.CodecError{Kind: h2wire.KindParseHeaderError, Detail: "unterminated header block"}
		}
		line := b[:i]
		b = b[i+2:]

		if len(line) == 0 {
			break
		}

		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return nil, nil, &h2wire.CodecError{Kind: h2wire.KindParseHeaderError, Detail: "header line missing colon"}
		}

		name := string(line[:colon])
		value := bytes.TrimLeft(line[colon+1:], " ")
		headers.Add(name, string(value))
	}

	return headers, b, nil
}

func multipartBoundary(contentType string) (string, bool) {
	const prefix = "multipart/form-data"
	if !bytesHasPrefixFold(contentType, prefix) {
		return "", false
	}
	const marker = "boundary="
	i := indexFold(contentType, marker)
	if i < 0 {
		return "", false
	}
	return contentType[i+len(marker):], true
}

func bytesHasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return equalFold(s[:len(prefix)], prefix)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if equalFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

