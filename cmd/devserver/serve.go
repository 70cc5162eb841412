package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sh3r4rd/flow_uploads/internal/config"
	"github.com/sh3r4rd/flow_uploads/internal/forward"
	"github.com/sh3r4rd/flow_uploads/internal/handler"
	"github.com/sh3r4rd/flow_uploads/internal/httpadapter"
	"github.com/sh3r4rd/flow_uploads/internal/logging"
	"github.com/sh3r4rd/flow_uploads/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		addr      string
		flowURL   string
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local HTTP server",
		Long: `Start the local HTTP server.

Settings default to the FLOW_URL, LOG_LEVEL and LOG_FORMAT environment
variables; flags override them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]string{}
			if cmd.Flags().Changed("flow-url") {
				overrides[config.EnvFlowURL] = flowURL
			}
			if cmd.Flags().Changed("log-level") {
				overrides[config.EnvLogLevel] = logLevel
			}
			if _, set := os.LookupEnv(config.EnvLogFormat); cmd.Flags().Changed("log-format") || !set {
				overrides[config.EnvLogFormat] = logFormat
			}

			cfg, err := config.FromLookup(func(key string) (string, bool) {
				if v, ok := overrides[key]; ok {
					return v, true
				}
				return os.LookupEnv(key)
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, addr, cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&flowURL, "flow-url", "", "webhook receiving validated uploads (default $FLOW_URL)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (default $LOG_LEVEL)")
	cmd.Flags().StringVar(&logFormat, "log-format", logging.FormatText, "log format: json or text")

	return cmd
}

func serve(ctx context.Context, addr string, cfg config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(metrics.Config{Registry: reg})

	fwd := forward.New(cfg.FlowURL, &http.Client{}, logger)
	h := handler.New(fwd, logger, recorder)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(h, reg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr":       addr,
			"forwarding": fwd.Enabled(),
		}).Info("dev server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(h *handler.UploadHandler, reg *prometheus.Registry, logger logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// The handler answers every method itself, including the 405s.
	r.Handle("/api/upload", httpadapter.Handler(h.Handle, logger))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}
