// Package handler implements the upload endpoint as an API Gateway proxy
// Lambda handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"github.com/sh3r4rd/flow_uploads/internal/metrics"
	"github.com/sh3r4rd/flow_uploads/internal/model"
	"github.com/sh3r4rd/flow_uploads/internal/parse"
)

// Forwarder delivers a validated upload downstream.
type Forwarder interface {
	Enabled() bool
	Forward(ctx context.Context, payload model.ForwardPayload) error
}

// UploadHandler validates uploads and hands them to a Forwarder. It keeps no
// per-request state, so one instance serves concurrent invocations.
type UploadHandler struct {
	forwarder Forwarder
	logger    logrus.FieldLogger
	metrics   *metrics.Recorder
}

// New returns an UploadHandler. logger defaults to the logrus standard
// logger; recorder may be nil.
func New(forwarder Forwarder, logger logrus.FieldLogger, recorder *metrics.Recorder) *UploadHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &UploadHandler{forwarder: forwarder, logger: logger, metrics: recorder}
}

// Handle processes one request. The returned error is always nil: every
// failure the caller should see is expressed as a status code.
func (h *UploadHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	log := h.logger.WithFields(logrus.Fields{
		"requestId": requestID(ctx, req),
		"method":    req.HTTPMethod,
	})

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Error("upload handler panicked")
			h.metrics.Upload("", metrics.OutcomeServerError)
			resp, err = internalError(), nil
		}
	}()

	log.Info("upload request received")

	switch strings.ToUpper(req.HTTPMethod) {
	case http.MethodOptions:
		h.metrics.Upload("", metrics.OutcomePreflight)
		return empty(http.StatusOK, corsFull()), nil
	case http.MethodPost:
	default:
		h.metrics.Upload("", metrics.OutcomeBadMethod)
		return empty(http.StatusMethodNotAllowed, originOnly()), nil
	}

	return h.post(ctx, log, req), nil
}

func (h *UploadHandler) post(ctx context.Context, log logrus.FieldLogger, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	body, err := rawBody(req)
	if err != nil {
		log.WithError(err).Error("decode proxy body")
		h.metrics.Upload("", metrics.OutcomeServerError)
		return internalError()
	}

	upload, mode, err := parse.Body(Header(req, "Content-Type"), body)
	log = log.WithField("mode", mode)
	if err != nil {
		return h.rejectParse(log, mode, err)
	}

	if missing := upload.Missing(); len(missing) > 0 {
		log.WithField("missing", missing).Info("upload rejected: missing required fields")
		h.metrics.Upload(string(mode), metrics.OutcomeIncomplete)
		return badRequest(MsgMissingFields)
	}

	log.WithFields(logrus.Fields(upload.Summary())).Info("upload parsed")

	h.forward(ctx, log, upload.Payload())

	out, err := json.Marshal(model.NewSuccessResponse())
	if err != nil {
		log.WithError(err).Error("encode success response")
		h.metrics.Upload(string(mode), metrics.OutcomeServerError)
		return internalError()
	}

	headers := corsFull()
	headers["Content-Type"] = model.ContentTypeJSON
	h.metrics.Upload(string(mode), metrics.OutcomeAccepted)
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       string(out),
	}
}

// forward never fails the request: webhook problems are only logged.
func (h *UploadHandler) forward(ctx context.Context, log logrus.FieldLogger, payload model.ForwardPayload) {
	if !h.forwarder.Enabled() {
		log.Info("FLOW_URL not configured, skipping webhook")
		h.metrics.Forward(metrics.ForwardDisabled)
		return
	}

	if err := h.forwarder.Forward(ctx, payload); err != nil {
		log.WithError(err).Warn("webhook forwarding failed")
		h.metrics.Forward(metrics.ForwardFailed)
		return
	}
	h.metrics.Forward(metrics.ForwardSent)
}

func (h *UploadHandler) rejectParse(log logrus.FieldLogger, mode parse.Mode, err error) events.APIGatewayProxyResponse {
	var (
		invalidJSON *parse.InvalidJSONError
		invalidFile *parse.InvalidFileError
		malformed   *parse.MalformedMultipartError
		resp        events.APIGatewayProxyResponse
	)

	switch {
	case errors.Is(err, parse.ErrMissingBoundary):
		resp = badRequest(MsgMissingBoundary)
	case errors.Is(err, parse.ErrEmptyBody):
		resp = badRequest(MsgEmptyBody)
	case errors.As(err, &invalidJSON):
		resp = badRequest(MsgInvalidJSON + invalidJSON.Err.Error())
	case errors.As(err, &invalidFile):
		resp = badRequest(MsgInvalidFile + invalidFile.Err.Error())
	case errors.As(err, &malformed):
		resp = badRequest(MsgInvalidMultipart + malformed.Err.Error())
	default:
		// Only the multipart reader fails in other ways.
		resp = badRequest(MsgInvalidMultipart + err.Error())
	}

	log.WithError(err).Info("upload rejected")
	h.metrics.Upload(string(mode), metrics.OutcomeBadRequest)
	return resp
}

// Header returns the first value of the named header, matching the name
// case-insensitively as API Gateway passes header keys through verbatim.
func Header(req events.APIGatewayProxyRequest, name string) string {
	for k, v := range req.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	for k, vs := range req.MultiValueHeaders {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}

func rawBody(req events.APIGatewayProxyRequest) ([]byte, error) {
	if !req.IsBase64Encoded {
		return []byte(req.Body), nil
	}
	data, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return nil, fmt.Errorf("handler: base64 proxy body: %w", err)
	}
	return data, nil
}

func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return req.RequestContext.RequestID
}
