package parse

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/sh3r4rd/flow_uploads/internal/mediatype"
	"github.com/sh3r4rd/flow_uploads/internal/model"
)

const dispositionFormData = "form-data"

var errNoClosingDelimiter = errors.New("missing closing boundary delimiter")

// Multipart reads a multipart/form-data body part by part.
//
// The part whose disposition carries a filename becomes the file. Plain
// fields named email, token, messageid or uniqueFileName (any case) fill the
// matching values. Parts with an unparseable disposition and unknown field
// names are skipped. A repeated name overwrites the earlier value.
//
// The body must end with the closing delimiter; a stream that stops early
// or has no parts at all is a MalformedMultipartError.
func Multipart(contentType string, body []byte) (model.UploadRequest, error) {
	var req model.UploadRequest

	boundary := boundaryOf(contentType)
	if boundary == "" {
		return req, ErrMissingBoundary
	}

	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextRawPart()
		// An unwrapped EOF is also returned when a delimiter line is
		// followed by nothing, so the closing delimiter is checked too.
		if err == io.EOF {
			if !bytes.Contains(body, []byte("--"+boundary+"--")) {
				return req, &MalformedMultipartError{Err: errNoClosingDelimiter}
			}
			return req, nil
		}
		if err != nil {
			return req, &MalformedMultipartError{Err: err}
		}

		if err := readPart(part, &req); err != nil {
			part.Close()
			return req, &MalformedMultipartError{Err: err}
		}
		part.Close()
	}
}

func boundaryOf(contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(trimQuotes(params["boundary"]))
}

func readPart(part *multipart.Part, req *model.UploadRequest) error {
	disposition, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil || disposition != dispositionFormData {
		return nil
	}

	if fileName := trimQuotes(params["filename"]); fileName != "" {
		data, err := io.ReadAll(part)
		if err != nil {
			return err
		}
		contentType := strings.TrimSpace(part.Header.Get("Content-Type"))
		if contentType == "" {
			contentType = mediatype.FromFileName(fileName)
		}
		req.FileName = &fileName
		req.ContentType = &contentType
		req.FileBytes = data
		return nil
	}

	name := trimQuotes(params["name"])
	if name == "" {
		return nil
	}
	data, err := io.ReadAll(part)
	if err != nil {
		return err
	}
	value := string(data)

	switch strings.ToLower(name) {
	case "email":
		req.Email = &value
	case "token":
		req.Token = &value
	case "messageid":
		req.MessageID = &value
	case "uniquefilename":
		req.UniqueFileName = &value
	}
	return nil
}
