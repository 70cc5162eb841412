package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/sh3r4rd/flow_uploads/internal/metrics"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(metrics.Config{Registry: reg})

	r.Upload("json", metrics.OutcomeAccepted)
	r.Upload("json", metrics.OutcomeAccepted)
	r.Upload("", metrics.OutcomeBadMethod)
	r.Forward(metrics.ForwardFailed)

	uploads, err := testutil.GatherAndCount(reg, "flow_uploads_uploads_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if uploads != 2 {
		t.Errorf("uploads_total series = %d, want 2", uploads)
	}

	forwards, err := testutil.GatherAndCount(reg, "flow_uploads_flow_forward_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if forwards != 1 {
		t.Errorf("flow_forward_total series = %d, want 1", forwards)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *metrics.Recorder
	r.Upload("multipart", metrics.OutcomeAccepted)
	r.Forward(metrics.ForwardSent)
}
