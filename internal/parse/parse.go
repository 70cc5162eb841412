// Package parse turns an upload request body into a model.UploadRequest.
//
// Two body formats are accepted. A Content-Type starting with
// multipart/form-data selects the multipart reader; anything else, including
// no Content-Type at all, is decoded as a JSON object. Parsing never
// validates: fields the body did not carry are left unset and it is up to
// the caller to check model.UploadRequest.Complete.
package parse

import (
	"strings"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

// Mode identifies which body format was parsed.
type Mode string

const (
	ModeMultipart Mode = "multipart"
	ModeJSON      Mode = "json"
)

// ModeFor picks the parser for a Content-Type header value.
func ModeFor(contentType string) Mode {
	ct := strings.TrimSpace(contentType)
	if len(ct) >= len(model.ContentTypeMultipart) &&
		strings.EqualFold(ct[:len(model.ContentTypeMultipart)], model.ContentTypeMultipart) {
		return ModeMultipart
	}
	return ModeJSON
}

// Body parses body according to contentType and reports the mode it used.
func Body(contentType string, body []byte) (model.UploadRequest, Mode, error) {
	mode := ModeFor(contentType)
	if mode == ModeMultipart {
		req, err := Multipart(contentType, body)
		return req, mode, err
	}
	req, err := JSON(body)
	return req, mode, err
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
