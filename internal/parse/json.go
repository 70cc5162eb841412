package parse

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

// JSON decodes a JSON object body. Absent properties stay unset; fileBase64,
// when present, is decoded with standard base64.
func JSON(body []byte) (model.UploadRequest, error) {
	var req model.UploadRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, ErrEmptyBody
	}

	var in model.JSONUpload
	if err := json.Unmarshal(body, &in); err != nil {
		return req, &InvalidJSONError{Err: err}
	}

	req = model.UploadRequest{
		FileName:       in.FileName,
		ContentType:    in.ContentType,
		Email:          in.Email,
		Token:          in.Token,
		MessageID:      in.MessageID,
		UniqueFileName: in.UniqueFileName,
	}
	if in.FileBase64 != nil {
		data, err := base64.StdEncoding.DecodeString(*in.FileBase64)
		if err != nil {
			return req, &InvalidFileError{Err: err}
		}
		req.FileBytes = data
	}
	return req, nil
}
