package parse

import "errors"

var (
	// ErrMissingBoundary is returned when a multipart content type carries no
	// usable boundary parameter.
	ErrMissingBoundary = errors.New("parse: missing multipart boundary")

	// ErrEmptyBody is returned when a JSON request has an empty or
	// whitespace-only body.
	ErrEmptyBody = errors.New("parse: empty request body")
)

// InvalidJSONError wraps a decoder failure on a JSON body.
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string { return "parse: invalid JSON: " + e.Err.Error() }
func (e *InvalidJSONError) Unwrap() error { return e.Err }

// InvalidFileError wraps a base64 decoding failure of the fileBase64 property.
type InvalidFileError struct {
	Err error
}

func (e *InvalidFileError) Error() string { return "parse: invalid fileBase64: " + e.Err.Error() }
func (e *InvalidFileError) Unwrap() error { return e.Err }

// MalformedMultipartError wraps a read failure inside a multipart stream.
type MalformedMultipartError struct {
	Err error
}

func (e *MalformedMultipartError) Error() string {
	return "parse: invalid multipart body: " + e.Err.Error()
}
func (e *MalformedMultipartError) Unwrap() error { return e.Err }
