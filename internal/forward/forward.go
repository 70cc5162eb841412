// Package forward posts validated uploads to the configured flow webhook.
package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sh3r4rd/flow_uploads/internal/model"
)

// maxLoggedBody caps how much of the webhook's reply ends up in the logs.
const maxLoggedBody = 512

// Doer is the part of *http.Client the forwarder needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forward: webhook returned status %d: %s", e.StatusCode, e.Body)
}

// Client sends one POST per upload. It holds no per-request state and is
// safe for concurrent use as long as its Doer is.
type Client struct {
	url    string
	doer   Doer
	logger logrus.FieldLogger
}

// New returns a Client targeting url. An empty url disables forwarding.
// A nil doer falls back to http.DefaultClient.
func New(url string, doer Doer, logger logrus.FieldLogger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{url: url, doer: doer, logger: logger}
}

// Enabled reports whether a webhook URL is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Forward posts payload to the webhook. It returns nil without sending
// anything when forwarding is disabled. The call runs on a context detached
// from ctx's cancellation, so a caller that goes away does not abort it.
func (c *Client) Forward(ctx context.Context, payload model.ForwardPayload) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("forward: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("forward: build request: %w", err)
	}
	req.Header.Set("Content-Type", model.ContentTypeJSON)

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("forward: post webhook: %w", err)
	}
	defer resp.Body.Close()

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	c.logger.WithFields(logrus.Fields{
		"status":       resp.StatusCode,
		"payloadBytes": len(body),
	}).Info("webhook accepted upload")
	return nil
}
