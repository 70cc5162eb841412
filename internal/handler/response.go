package handler

import (
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

// CORS header values.
const (
	AllowOrigin  = "*"
	AllowMethods = "POST, OPTIONS"
	AllowHeaders = "Content-Type"
)

// Plain-text bodies for rejected requests.
const (
	MsgMissingBoundary  = "Missing multipart boundary."
	MsgEmptyBody        = "Empty request body."
	MsgInvalidJSON      = "Invalid JSON: "
	MsgInvalidFile      = "Invalid fileBase64: "
	MsgInvalidMultipart = "Invalid multipart body: "
	MsgInternal         = "Internal server error."
)

// MsgMissingFields is the 400 body when validation fails.
var MsgMissingFields = "Missing required fields. Required: " + strings.Join(model.RequiredFields, ", ") + "."

// originOnly is attached to every response.
func originOnly() map[string]string {
	return map[string]string{"Access-Control-Allow-Origin": AllowOrigin}
}

// corsFull is attached to the preflight reply and to successful uploads.
func corsFull() map[string]string {
	h := originOnly()
	h["Access-Control-Allow-Methods"] = AllowMethods
	h["Access-Control-Allow-Headers"] = AllowHeaders
	return h
}

func empty(status int, headers map[string]string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{StatusCode: status, Headers: headers}
}

func text(status int, body string) events.APIGatewayProxyResponse {
	h := originOnly()
	h["Content-Type"] = model.ContentTypeText
	return events.APIGatewayProxyResponse{StatusCode: status, Headers: h, Body: body}
}

func badRequest(body string) events.APIGatewayProxyResponse {
	return text(http.StatusBadRequest, body)
}

func internalError() events.APIGatewayProxyResponse {
	return text(http.StatusInternalServerError, MsgInternal)
}
