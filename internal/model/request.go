package model

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// UploadRequest holds the fields collected from one inbound request.
// A nil field was never supplied; FileBytes is set when non-nil, even if empty.
type UploadRequest struct {
	FileName       *string
	ContentType    *string
	FileBytes      []byte
	Email          *string
	Token          *string
	MessageID      *string
	UniqueFileName *string
}

// Missing returns the names of required fields that are still unset, in
// RequiredFields order.
func (r UploadRequest) Missing() []string {
	var missing []string
	check := func(name string, set bool) {
		if !set {
			missing = append(missing, name)
		}
	}
	check(FieldFileName, r.FileName != nil)
	check(FieldContentType, r.ContentType != nil)
	check(FieldFileBase64, r.FileBytes != nil)
	check(FieldEmail, r.Email != nil)
	check(FieldToken, r.Token != nil)
	check(FieldMessageID, r.MessageID != nil)
	check(FieldUniqueFileName, r.UniqueFileName != nil)
	return missing
}

// Complete reports whether every required field is set.
func (r UploadRequest) Complete() bool {
	return len(r.Missing()) == 0
}

// Payload builds the outbound webhook body. Unset fields become empty strings,
// so callers check Complete first.
func (r UploadRequest) Payload() ForwardPayload {
	return ForwardPayload{
		FileName:       deref(r.FileName),
		ContentType:    deref(r.ContentType),
		FileBase64:     base64.StdEncoding.EncodeToString(r.FileBytes),
		Email:          deref(r.Email),
		Token:          deref(r.Token),
		MessageID:      deref(r.MessageID),
		UniqueFileName: deref(r.UniqueFileName),
	}
}

// Summary returns log-safe key/value pairs describing the request.
func (r UploadRequest) Summary() map[string]any {
	return map[string]any{
		FieldFileName:       deref(r.FileName),
		FieldContentType:    deref(r.ContentType),
		FieldEmail:          deref(r.Email),
		FieldToken:          TokenPreview(deref(r.Token)),
		FieldMessageID:      deref(r.MessageID),
		FieldUniqueFileName: deref(r.UniqueFileName),
		"fileSize":          len(r.FileBytes),
	}
}

// TokenPreview shortens a token to its first TokenPreviewLength characters
// followed by "...".
func TokenPreview(token string) string {
	if utf8.RuneCountInString(token) <= TokenPreviewLength {
		return token + "..."
	}
	var b strings.Builder
	for i, r := range []rune(token) {
		if i == TokenPreviewLength {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "..."
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
