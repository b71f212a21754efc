package http1

import (
	"bytes"

	h2wire "github.com/kavuri/h2wire"
)

// Section is one boundary-delimited part of a multipart/form-data body: its
// own header block and opaque payload bytes (spec.md §3 "FormData").
type Section struct {
	Header Header
	Body   []byte
}

// FormData is a boundary string plus an ordered sequence of sections.
type FormData struct {
	Boundary string
	Sections []Section
}

// ParseFormData scans b for `--boundary\r\n` markers, splitting each
// section at its first blank line into a header block and body, per
// spec.md §4.9. The closing marker is `--boundary--`.
func ParseFormData(boundary string, b []byte) (*FormData, error) {
	if boundary == "" {
		return nil, &h2wire.CodecError{Kind: h2wire.KindFormdataBoundaryNotFound, Detail: "empty boundary"}
	}

	open := []byte("--" + boundary + "\r\n")
	closeMarker := []byte("--" + boundary + "--")

	form := &FormData{Boundary: boundary}

	start := bytes.Index(b, open)
	if start < 0 {
		return nil, &h2wire.CodecError{Kind: h2wire.KindFormdataBoundaryNotFound, Detail: boundary}
	}

	pos := start
	for {
		pos += len(open)

		next := bytes.Index(b[pos:], open)
		endPos := bytes.Index(b[pos:], closeMarker)

		var sectionEnd int
		switch {
		case next < 0 && endPos < 0:
			return nil, &h2wire.CodecError{Kind: h2wire.KindParseFormDataError, Detail: "missing closing boundary"}
		case next < 0:
			sectionEnd = pos + endPos
		case endPos < 0:
			sectionEnd = pos + next
		case next < endPos:
			sectionEnd = pos + next
		default:
			sectionEnd = pos + endPos
		}

		section, err := parseSection(b[pos:sectionEnd])
		if err != nil {
			return nil, err
		}
		form.Sections = append(form.Sections, section)

		if endPos >= 0 && (next < 0 || endPos <= next) {
			break
		}

		pos = sectionEnd
		if !bytes.HasPrefix(b[pos:], open) {
			return nil, &h2wire.CodecError{Kind: h2wire.KindParseFormDataError, Detail: "malformed boundary marker"}
		}
	}

	return form, nil
}

// parseSection splits raw (the bytes strictly between one boundary marker
// and the next) at the first CRLFCRLF into headers and body. Per spec.md
// §4.9 the trailing CRLF that precedes the next boundary marker is not
// part of the body.
func parseSection(raw []byte) (Section, error) {
	raw = bytes.TrimSuffix(raw, []byte("\r\n"))

	i := bytes.Index(raw, []byte("\r\n\r\n"))
	if i < 0 {
		return Section{}, &h2wire.CodecError{Kind: h2wire.KindParseFormDataError, Detail: "section missing header/body separator"}
	}

	headerBlock := raw[:i+2]
	body := raw[i+4:]

	var headers Header
	for len(headerBlock) > 0 {
		j := bytes.Index(headerBlock, []byte("\r\n"))
		if j < 0 {
			break
		}
		line := headerBlock[:j]
		headerBlock = headerBlock[j+2:]
		if len(line) == 0 {
			continue
		}
		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			return Section{}, &h2wire.CodecError{Kind: h2wire.KindParseFormDataError, Detail: "section header missing colon"}
		}
		name := string(line[:colon])
		value := bytes.TrimLeft(line[colon+1:], " ")
		headers.Add(name, string(value))
	}

	return Section{Header: headers, Body: append([]byte(nil), body...)}, nil
}

// EncodeFormData serializes form per spec.md §4.9: `--boundary\r\n`, header
// lines, a blank line, the body, then `\r\n` before the next section,
// terminated by `--boundary--`. Round-trip is byte-exact only when header
// ordering is preserved by the caller (spec.md §4.9/§9 Open Question 1).
func EncodeFormData(form *FormData) []byte {
	var out []byte

	open := "--" + form.Boundary + "\r\n"
	closeMarker := "--" + form.Boundary + "--"

	for _, s := range form.Sections {
		out = append(out, open...)
		for _, f := range s.Header {
			out = append(out, f.Key.String()...)
			out = append(out, ": "...)
			out = append(out, f.Value...)
			out = append(out, "\r\n"...)
		}
		out = append(out, "\r\n"...)
		out = append(out, s.Body...)
		out = append(out, "\r\n"...)
	}

	out = append(out, closeMarker...)

	return out
}
