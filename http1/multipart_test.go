package http1

import "testing"

func TestParseFormDataSingleSection(t *testing.T) {
	boundary := "delimiter12345"
	raw := []byte("--delimiter12345\r\n" +
		"Content-Disposition: form-data; name=\"field1\"\r\n" +
		"\r\n" +
		"value1\r\n" +
		"--delimiter12345--")

	form, err := ParseFormData(boundary, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(form.Sections))
	}

	s := form.Sections[0]
	if v, ok := s.Header.Get("Content-Disposition"); !ok || v != `form-data; name="field1"` {
		t.Fatalf("unexpected header: %q, %v", v, ok)
	}
	if string(s.Body) != "value1" {
		t.Fatalf("unexpected body: %q", s.Body)
	}
}

func TestParseFormDataMultipleSections(t *testing.T) {
	boundary := "X"
	raw := []byte("--X\r\n" +
		"Content-Disposition: form-data; name=\"a\"\r\n\r\n" +
		"1\r\n" +
		"--X\r\n" +
		"Content-Disposition: form-data; name=\"b\"\r\n\r\n" +
		"2\r\n" +
		"--X--")

	form, err := ParseFormData(boundary, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(form.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(form.Sections))
	}
	if string(form.Sections[0].Body) != "1" || string(form.Sections[1].Body) != "2" {
		t.Fatalf("unexpected bodies: %q, %q", form.Sections[0].Body, form.Sections[1].Body)
	}
}

func TestParseFormDataMissingBoundary(t *testing.T) {
	_, err := ParseFormData("nope", []byte("no markers here"))
	if err == nil {
		t.Fatal("expected an error when the boundary marker is absent")
	}
}

func TestEncodeFormDataRoundTrip(t *testing.T) {
	form := &FormData{Boundary: "delimiter12345"}
	var hdr Header
	hdr.Add("Content-Disposition", `form-data; name="field1"`)
	form.Sections = append(form.Sections, Section{Header: hdr, Body: []byte("value1")})

	encoded := EncodeFormData(form)

	parsed, err := ParseFormData("delimiter12345", encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed.Sections) != 1 || string(parsed.Sections[0].Body) != "value1" {
		t.Fatalf("round trip mismatch: %+v", parsed)
	}
}
