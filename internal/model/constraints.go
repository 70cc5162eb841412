package model

// Domain constants shared across handler, parsing, and forwarding packages.
const (
	ContentTypeOctetStream = "application/octet-stream"
	ContentTypeJSON        = "application/json"
	ContentTypeMultipart   = "multipart/form-data"
	ContentTypeText        = "text/plain; charset=utf-8"

	TokenPreviewLength = 10
)

// Field names as they appear in JSON bodies and in the forwarded payload.
const (
	FieldFileName       = "fileName"
	FieldContentType    = "contentType"
	FieldFileBase64     = "fileBase64"
	FieldEmail          = "email"
	FieldToken          = "token"
	FieldMessageID      = "messageId"
	FieldUniqueFileName = "uniqueFileName"
)

// RequiredFields lists every field a request must carry before it is forwarded.
var RequiredFields = []string{
	FieldFileName,
	FieldContentType,
	FieldFileBase64,
	FieldEmail,
	FieldToken,
	FieldMessageID,
	FieldUniqueFileName,
}
