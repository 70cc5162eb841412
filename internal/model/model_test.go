package model_test

import (
	"encoding/base64"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

func strPtr(s string) *string { return &s }

func completeRequest() model.UploadRequest {
	return model.UploadRequest{
		FileName:       strPtr("report.pdf"),
		ContentType:    strPtr("application/pdf"),
		FileBytes:      []byte("%PDF-1.4"),
		Email:          strPtr("a@b.com"),
		Token:          strPtr("abc123xyz999"),
		MessageID:      strPtr("m1"),
		UniqueFileName: strPtr("u1"),
	}
}

func TestUploadRequestMissing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.UploadRequest)
		want   []string
	}{
		{
			name:   "complete request",
			mutate: func(*model.UploadRequest) {},
			want:   nil,
		},
		{
			name:   "missing email",
			mutate: func(r *model.UploadRequest) { r.Email = nil },
			want:   []string{"email"},
		},
		{
			name:   "missing file bytes",
			mutate: func(r *model.UploadRequest) { r.FileBytes = nil },
			want:   []string{"fileBase64"},
		},
		{
			name: "missing several",
			mutate: func(r *model.UploadRequest) {
				r.FileName = nil
				r.MessageID = nil
				r.UniqueFileName = nil
			},
			want: []string{"fileName", "messageId", "uniqueFileName"},
		},
		{
			name:   "empty file counts as set",
			mutate: func(r *model.UploadRequest) { r.FileBytes = []byte{} },
			want:   nil,
		},
		{
			name:   "empty string counts as set",
			mutate: func(r *model.UploadRequest) { r.Token = strPtr("") },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := completeRequest()
			tt.mutate(&req)

			got := req.Missing()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %v, want %v", got, tt.want)
			}
			if req.Complete() != (len(tt.want) == 0) {
				t.Errorf("Complete() = %v, want %v", req.Complete(), len(tt.want) == 0)
			}
		})
	}
}

func TestUploadRequestMissingZeroValue(t *testing.T) {
	got := model.UploadRequest{}.Missing()
	if !reflect.DeepEqual(got, model.RequiredFields) {
		t.Errorf("Missing() = %v, want %v", got, model.RequiredFields)
	}
}

func TestPayloadBase64RoundTrip(t *testing.T) {
	original := []byte{0x00, 0xff, 0x10, 'h', 'i', 0x7f}
	req := completeRequest()
	req.FileBytes = original

	payload := req.Payload()
	decoded, err := base64.StdEncoding.DecodeString(payload.FileBase64)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round-trip mismatch: got %v, want %v", decoded, original)
	}
}

func TestForwardPayloadJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(completeRequest().Payload())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal to map: %v", err)
	}

	for _, key := range model.RequiredFields {
		if _, ok := m[key]; !ok {
			t.Errorf("expected JSON key %q not found", key)
		}
	}
	if len(m) != len(model.RequiredFields) {
		t.Errorf("payload has %d keys, want %d", len(m), len(model.RequiredFields))
	}
}

func TestJSONUploadAbsentProperties(t *testing.T) {
	var in model.JSONUpload
	if err := json.Unmarshal([]byte(`{"fileName":"x.txt","email":""}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if in.FileName == nil || *in.FileName != "x.txt" {
		t.Errorf("FileName = %v, want x.txt", in.FileName)
	}
	if in.Email == nil || *in.Email != "" {
		t.Errorf("Email = %v, want empty string", in.Email)
	}
	if in.Token != nil || in.FileBase64 != nil {
		t.Errorf("absent properties should stay nil: token=%v fileBase64=%v", in.Token, in.FileBase64)
	}
}

func TestSuccessResponseBody(t *testing.T) {
	data, err := json.Marshal(model.NewSuccessResponse())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"status":"OK","success":true,"message":"Upload processed successfully!"}`
	if string(data) != want {
		t.Errorf("body = %s, want %s", data, want)
	}
}

func TestTokenPreview(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"long token", "abc123xyz999", "abc123xyz9..."},
		{"exact length", "0123456789", "0123456789..."},
		{"short token", "t", "t..."},
		{"empty", "", "..."},
		{"multibyte", "ééééééééééé", "éééééééééé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.TokenPreview(tt.token); got != tt.want {
				t.Errorf("TokenPreview(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestSummaryTruncatesToken(t *testing.T) {
	summary := completeRequest().Summary()

	if got := summary["token"]; got != "abc123xyz9..." {
		t.Errorf("token = %v, want %q", got, "abc123xyz9...")
	}
	if got := summary["fileSize"]; got != len("%PDF-1.4") {
		t.Errorf("fileSize = %v, want %d", got, len("%PDF-1.4"))
	}
}

func TestConstraintConstants(t *testing.T) {
	if model.ContentTypeOctetStream != "application/octet-stream" {
		t.Errorf("ContentTypeOctetStream = %q", model.ContentTypeOctetStream)
	}
	if model.TokenPreviewLength != 10 {
		t.Errorf("TokenPreviewLength = %d, want 10", model.TokenPreviewLength)
	}
}
