package telemetry

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitTracerNone(t *testing.T) {
	for _, exporter := range []string{"", ExporterNone} {
		shutdown, err := InitTracer(TracerOptions{ServiceName: "test", Exporter: exporter}, discardLogger())
		if err != nil {
			t.Fatalf("InitTracer(%q): %v", exporter, err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	}
}

func TestInitTracerStdout(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := InitTracer(TracerOptions{ServiceName: "test", Exporter: ExporterStdout, Writer: &buf}, discardLogger())
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestInitTracerUnknownExporter(t *testing.T) {
	if _, err := InitTracer(TracerOptions{Exporter: "jaeger"}, discardLogger()); err == nil {
		t.Error("expected error for unknown exporter")
	}
}
