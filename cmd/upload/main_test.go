package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

const validJSON = `{"fileName":"x.txt","contentType":"text/plain","fileBase64":"aGk=","email":"a@b.com","token":"t","messageId":"m1","uniqueFileName":"u1"}`

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// logLines decodes JSON log output into one map per entry.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("log line is not JSON: %v (%q)", err, sc.Text())
		}
		entries = append(entries, e)
	}
	return entries
}

func warnings(entries []map[string]any) []string {
	var msgs []string
	for _, e := range entries {
		if e["level"] == "warning" {
			msgs = append(msgs, e["msg"].(string))
		}
	}
	return msgs
}

func TestNewHandlerInvalidConfigStillAccepts(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(lookupFrom(map[string]string{
		"FLOW_URL":  "flow.example.com",
		"LOG_LEVEL": "loud",
	}), &buf)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       validJSON,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", resp.StatusCode, resp.Body)
	}

	got := warnings(logLines(t, &buf))
	want := []string{"invalid configuration, continuing with defaults", "webhook forwarding failed"}
	if len(got) != len(want) {
		t.Fatalf("warnings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("warning %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewHandlerWithoutFlowURL(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(lookupFrom(nil), &buf)

	resp, _ := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       validJSON,
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	got := warnings(logLines(t, &buf))
	if len(got) != 1 || got[0] != "FLOW_URL is not set, uploads will be accepted but not forwarded" {
		t.Errorf("warnings = %v", got)
	}
}
