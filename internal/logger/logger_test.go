package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestTextLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "debug",
		Format:      "text",
		ServiceName: "test-service",
		Version:     "dev",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Warn("something odd", "detail", "here")

	out := buf.String()
	if !strings.Contains(out, "something odd") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("Expected WARN level in output, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:  "warn",
		Format: "text",
	}

	InitLoggerWithWriter(config, &buf)

	Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected info log to be filtered at warn level, got %q", buf.String())
	}

	Error("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected error log to pass filter, got %q", buf.String())
	}
}

func TestRequestIDPropagation(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	id := GenerateRequestID()
	ctx := WithRequestID(context.Background(), id)

	got, ok := RequestIDFromContext(ctx)
	if !ok || got != id {
		t.Fatalf("Expected request id %q in context, got %q (ok=%v)", id, got, ok)
	}

	FromContext(ctx).Info("with request id")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != id {
		t.Errorf("Expected request_id=%q, got %v", id, logEntry["request_id"])
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request id in fresh context")
	}
}
