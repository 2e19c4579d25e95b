// Package testutil builds intent events and loggers for tests.
package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// Str returns a pointer to v for building slot maps.
func Str(v string) *string { return &v }

// Event builds a RecommendPortfolio-style request for intent with the given
// invocation source and slots. Session attributes are set to a single marker
// pair so tests can check they are echoed.
func Event(intent, source string, slots domain.Slots) *domain.IntentRequest {
	return &domain.IntentRequest{
		MessageVersion:    "1.0",
		InvocationSource:  source,
		UserID:            "test-user",
		CurrentIntent:     &domain.CurrentIntent{Name: intent, Slots: slots, ConfirmationStatus: "None"},
		SessionAttributes: map[string]string{"k": "v"},
	}
}

// EventJSON marshals req as the platform would send it.
func EventJSON(t *testing.T, req *domain.IntentRequest) []byte {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return data
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
