// Package http1 implements the HTTP/1.1 request/response and
// multipart/form-data codec that spec.md §4.9 describes as independent of
// the HPACK context: a plain text-oriented sibling of the HTTP/2 framing
// layer, sharing only the error taxonomy.
package http1

import "strings"

// StandardHeader is a closed enumeration of the header names the original
// Rust source's `define_headers!` macro listed
// (original_source/src/http/http.rs). Anything outside this set is held as
// a custom string in HeaderKey.
type StandardHeader uint8

const (
	HeaderUnknown StandardHeader = iota
	HeaderAIM
	HeaderAccept
	HeaderAcceptCharset
	HeaderAcceptEncoding
	HeaderAcceptLanguage
	HeaderAcceptDatetime
	HeaderAccessControlRequestMethod
	HeaderAccessControlRequestHeaders
	HeaderAuthorization
	HeaderCacheControl
	HeaderConnection
	HeaderContentDisposition
	HeaderContentLength
	HeaderContentType
	HeaderCookie
	HeaderDate
	HeaderExpect
	HeaderForwarded
	HeaderFrom
	HeaderHost
	HeaderIfMatch
	HeaderIfModifiedSince
	HeaderIfNoneMatch
	HeaderIfRange
	HeaderIfUnmodifiedSince
	HeaderMaxForwards
	HeaderOrigin
	HeaderPragma
	HeaderProxyAuthorization
	HeaderRange
	HeaderReferer
	HeaderTE
	HeaderUserAgent
	HeaderUpgrade
	HeaderVia
	HeaderWarning
	HeaderContentSecurityPolicy
	HeaderStrictTransportSecurity
	HeaderXContentTypeOptions
	HeaderXFrameOptions
	HeaderXXSSProtection
)

var standardHeaderNames = [...]string{
	HeaderUnknown:                     "",
	HeaderAIM:                         "A-IM",
	HeaderAccept:                      "Accept",
	HeaderAcceptCharset:               "Accept-Charset",
	HeaderAcceptEncoding:              "Accept-Encoding",
	HeaderAcceptLanguage:              "Accept-Language",
	HeaderAcceptDatetime:              "Accept-Datetime",
	HeaderAccessControlRequestMethod:  "Access-Control-Request-Method",
	HeaderAccessControlRequestHeaders: "Access-Control-Request-Headers",
	HeaderAuthorization:               "Authorization",
	HeaderCacheControl:                "Cache-Control",
	HeaderConnection:                  "Connection",
	HeaderContentDisposition:          "Content-Disposition",
	HeaderContentLength:               "Content-Length",
	HeaderContentType:                 "Content-Type",
	HeaderCookie:                      "Cookie",
	HeaderDate:                        "Date",
	HeaderExpect:                      "Expect",
	HeaderForwarded:                   "Forwarded",
	HeaderFrom:                        "From",
	HeaderHost:                        "Host",
	HeaderIfMatch:                     "If-Match",
	HeaderIfModifiedSince:             "If-Modified-Since",
	HeaderIfNoneMatch:                 "If-None-Match",
	HeaderIfRange:                     "If-Range",
	HeaderIfUnmodifiedSince:           "If-Unmodified-Since",
	HeaderMaxForwards:                 "Max-Forwards",
	HeaderOrigin:                      "Origin",
	HeaderPragma:                      "Pragma",
	HeaderProxyAuthorization:          "Proxy-Authorization",
	HeaderRange:                       "Range",
	HeaderReferer:                     "Referer",
	HeaderTE:                          "TE",
	HeaderUserAgent:                   "User-Agent",
	HeaderUpgrade:                     "Upgrade",
	HeaderVia:                         "Via",
	HeaderWarning:                     "Warning",
	HeaderContentSecurityPolicy:       "Content-Security-Policy",
	HeaderStrictTransportSecurity:     "Strict-Transport-Security",
	HeaderXContentTypeOptions:         "X-Content-Type-Options",
	HeaderXFrameOptions:               "X-Frame-Options",
	HeaderXXSSProtection:              "X-XSS-Protection",
}

var standardHeaderByName = func() map[string]StandardHeader {
	m := make(map[string]StandardHeader, len(standardHeaderNames))
	for v, name := range standardHeaderNames {
		if name == "" {
			continue
		}
		m[strings.ToLower(name)] = StandardHeader(v)
	}
	return m
}()

// String returns the canonical wire spelling of h, or "" for HeaderUnknown.
func (h StandardHeader) String() string {
	if int(h) < len(standardHeaderNames) {
		return standardHeaderNames[h]
	}
	return ""
}

// lookupStandardHeader resolves a header name (any case) to its
// StandardHeader tag, reporting false when name isn't one of the
// recognized standard names.
func lookupStandardHeader(name string) (StandardHeader, bool) {
	h, ok := standardHeaderByName[strings.ToLower(name)]
	return h, ok
}

// HeaderKey identifies a header by its recognized StandardHeader tag, or,
// for anything outside that set, by its original-case custom spelling.
// Equality and hashing consider both fields, fixing the bug spec.md §9 Open
// Question 2 calls out in the original source (a HeaderKey hash that only
// considered the enum discriminant, collapsing distinct custom headers into
// one bucket).
type HeaderKey struct {
	Standard StandardHeader
	Custom   string
}

// NewHeaderKey builds a HeaderKey from a wire header name, resolving it to
// a StandardHeader when recognized and falling back to Custom otherwise.
func NewHeaderKey(name string) HeaderKey {
	if std, ok := lookupStandardHeader(name); ok {
		return HeaderKey{Standard: std}
	}
	return HeaderKey{Custom: name}
}

// String returns the wire spelling of the key.
func (k HeaderKey) String() string {
	if k.Standard != HeaderUnknown {
		return k.Standard.String()
	}
	return k.Custom
}

// Equal reports whether k and other name the same header, comparing the
// custom spelling case-insensitively per RFC 9110 §5.1.
func (k HeaderKey) Equal(other HeaderKey) bool {
	if k.Standard != HeaderUnknown || other.Standard != HeaderUnknown {
		return k.Standard == other.Standard
	}
	return strings.EqualFold(k.Custom, other.Custom)
}

// Field is one (key, value) header line, preserving the case it was parsed
// or set with.
type Field struct {
	Key   HeaderKey
	Value string
}

// Header is an insertion-ordered sequence of header fields. Keeping order
// (rather than a map) is what makes FormData round-trips byte-exact
// whenever the caller doesn't reorder headers itself — spec.md §9 Open
// Question 1, resolved in favor of ordering (see SPEC_FULL.md).
type Header []Field

// Add appends a field, keeping any existing field with the same key.
func (h *Header) Add(name, value string) {
	*h = append(*h, Field{Key: NewHeaderKey(name), Value: value})
}

// Set replaces every existing field with key name with a single field
// carrying value, appending one if none existed.
func (h *Header) Set(name, value string) {
	key := NewHeaderKey(name)
	for i := range *h {
		if (*h)[i].Key.Equal(key) {
			(*h)[i].Value = value
			*h = append((*h)[:i+1], removeMatching((*h)[i+1:], key)...)
			return
		}
	}
	*h = append(*h, Field{Key: key, Value: value})
}

func removeMatching(fields []Field, key HeaderKey) []Field {
	out := fields[:0]
	for _, f := range fields {
		if !f.Key.Equal(key) {
			out = append(out, f)
		}
	}
	return out
}

// Get returns the first value stored under name, and whether it was found.
func (h Header) Get(name string) (string, bool) {
	key := NewHeaderKey(name)
	for _, f := range h {
		if f.Key.Equal(key) {
			return f.Value, true
		}
	}
	return "", false
}

// Del removes every field stored under name.
func (h *Header) Del(name string) {
	key := NewHeaderKey(name)
	*h = removeMatching(*h, key)
}
