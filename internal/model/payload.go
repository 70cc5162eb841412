package model

// JSONUpload is the body accepted by POST when the request is not multipart.
// Pointer fields stay nil when the property is absent.
type JSONUpload struct {
	FileName       *string `json:"fileName"`
	ContentType    *string `json:"contentType"`
	FileBase64     *string `json:"fileBase64"`
	Email          *string `json:"email"`
	Token          *string `json:"token"`
	MessageID      *string `json:"messageId"`
	UniqueFileName *string `json:"uniqueFileName"`
}

// ForwardPayload is the JSON object posted to the flow webhook.
type ForwardPayload struct {
	FileName       string `json:"fileName"`
	ContentType    string `json:"contentType"`
	FileBase64     string `json:"fileBase64"`
	Email          string `json:"email"`
	Token          string `json:"token"`
	MessageID      string `json:"messageId"`
	UniqueFileName string `json:"uniqueFileName"`
}
