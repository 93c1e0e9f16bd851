package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestLogWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warn("pacing_slow", map[string]any{"wait_ms": 350})
	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("not json: %v: %s", err, buf.String())
	}
	if e.Level != "warn" || e.Message != "pacing_slow" || e.Fields["wait_ms"] != float64(350) {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Time == "" {
		t.Fatal("missing time")
	}
}

func TestLogSurvivesUnencodableFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("bad_fields", map[string]any{"ch": make(chan int)})
	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("not json: %v: %s", err, buf.String())
	}
	if e.Message != "log_encode_error" || e.Fields["message"] != "bad_fields" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}
