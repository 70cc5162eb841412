// Package httpadapter serves an API Gateway proxy handler over net/http so the
// function can run locally without the Lambda runtime.
package httpadapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// ProxyHandler is the signature lambda.Start accepts for proxy integrations.
type ProxyHandler func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Handler converts each request to a proxy event, calls h and writes the
// proxy response back. A handler error becomes a 502, as API Gateway does.
func Handler(h ProxyHandler, logger logrus.FieldLogger) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := Request(r)
		if err != nil {
			logger.WithError(err).Error("convert request to proxy event")
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		resp, err := h(r.Context(), event)
		if err != nil {
			logger.WithError(err).Error("proxy handler returned an error")
			http.Error(w, "Internal server error", http.StatusBadGateway)
			return
		}

		if err := WriteResponse(w, resp); err != nil {
			logger.WithError(err).Warn("write proxy response")
		}
	})
}

// Request builds a proxy event from r. The body is always passed base64
// encoded so binary multipart uploads survive unchanged.
func Request(r *http.Request) (events.APIGatewayProxyRequest, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, fmt.Errorf("httpadapter: read body: %w", err)
		}
	}

	headers := make(map[string]string, len(r.Header))
	multi := make(map[string][]string, len(r.Header))
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers[k] = vs[0]
		}
		multi[k] = append([]string(nil), vs...)
	}

	query := make(map[string]string)
	multiQuery := make(map[string][]string)
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
		multiQuery[k] = vs
	}

	return events.APIGatewayProxyRequest{
		Resource:                        r.URL.Path,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               multi,
		QueryStringParameters:           query,
		MultiValueQueryStringParameters: multiQuery,
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  middleware.GetReqID(r.Context()),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		},
		Body:            base64.StdEncoding.EncodeToString(body),
		IsBase64Encoded: true,
	}, nil
}

// WriteResponse copies a proxy response onto w.
func WriteResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) error {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	for k, vs := range resp.MultiValueHeaders {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}

	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadGateway)
			return fmt.Errorf("httpadapter: decode response body: %w", err)
		}
		body = decoded
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}
