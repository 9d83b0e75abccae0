package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInitWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(LogConfig{Level: "INFO", Format: "json"}, &buf); err != nil {
		t.Fatal(err)
	}

	Debug(context.Background(), "hidden")
	Info(context.Background(), "dashboard rendered", "history_rows", 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["msg"] != "dashboard rendered" || rec["history_rows"] != float64(10) {
		t.Errorf("record = %v", rec)
	}
}

func TestInitWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(LogConfig{Level: "debug", Format: "text"}, &buf); err != nil {
		t.Fatal(err)
	}
	Debug(context.Background(), "visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOperationTimerEndWithError(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithWriter(LogConfig{Level: "WARN"}, &buf); err != nil {
		t.Fatal(err)
	}
	op := StartOperation(context.Background(), "data.load", "token", "1")
	op.EndWithError(errors.New("status.json: not found"))

	out := buf.String()
	for _, want := range []string{`"operation":"data.load"`, `"token":"1"`, "status.json: not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %q", want, out)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	if parseLogLevel("bogus").String() != "INFO" {
		t.Error("unknown level should fall back to INFO")
	}
	if parseLogLevel("error").String() != "ERROR" {
		t.Error("level should be case-insensitive")
	}
}
