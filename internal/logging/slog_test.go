package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid log json: %v", err)
	}
	return m
}

func TestSlogLogger_Info(t *testing.T) {
	l, buf := newBufferLogger()
	l.Info(context.Background(), "hello", "k", "v")

	m := lastLine(t, buf)
	if m["msg"] != "hello" || m["k"] != "v" {
		t.Fatalf("unexpected record: %v", m)
	}
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufferLogger()
	child := l.With("module", "store")
	child.Warn(context.Background(), "careful")

	m := lastLine(t, buf)
	if m["module"] != "store" || m["level"] != "WARN" {
		t.Fatalf("unexpected record: %v", m)
	}
}
