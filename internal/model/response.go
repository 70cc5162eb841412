package model

// Fixed values of the success body.
const (
	StatusOK       = "OK"
	SuccessMessage = "Upload processed successfully!"
)

// SuccessResponse is returned for every valid POST, whatever the webhook did.
type SuccessResponse struct {
	Status  string `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSuccessResponse returns the fixed success body.
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{
		Status:  StatusOK,
		Success: true,
		Message: SuccessMessage,
	}
}
