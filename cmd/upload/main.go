// Command upload is the Lambda entry point for the upload endpoint.
package main

import (
	"io"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/sh3r4rd/flow_uploads/internal/config"
	"github.com/sh3r4rd/flow_uploads/internal/forward"
	"github.com/sh3r4rd/flow_uploads/internal/handler"
	"github.com/sh3r4rd/flow_uploads/internal/logging"
)

func main() {
	h := newHandler(os.LookupEnv, os.Stdout)
	lambda.Start(h.Handle)
}

// newHandler wires the handler from the environment. Invalid settings are
// logged and replaced rather than failing the cold start: uploads must keep
// being accepted even when the webhook side is misconfigured.
func newHandler(lookup func(string) (string, bool), out io.Writer) *handler.UploadHandler {
	cfg, cfgErr := config.FromLookup(lookup)
	if cfgErr != nil {
		cfg = cfg.Lenient()
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, out)
	if cfgErr != nil {
		logger.WithError(cfgErr).Warn("invalid configuration, continuing with defaults")
	}

	// One client for the life of the execution environment.
	client := &http.Client{}
	fwd := forward.New(cfg.FlowURL, client, logger)
	if !fwd.Enabled() {
		logger.Warn("FLOW_URL is not set, uploads will be accepted but not forwarded")
	}

	return handler.New(fwd, logger, nil)
}
