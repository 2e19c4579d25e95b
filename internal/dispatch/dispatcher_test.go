package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/dialog"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/telemetry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubHandler struct {
	calls int
	resp  *domain.Response
}

func (s *stubHandler) Handle(req *domain.IntentRequest) *domain.Response {
	s.calls++
	return s.resp
}

func event(name, source string) *domain.IntentRequest {
	return &domain.IntentRequest{
		InvocationSource:  source,
		CurrentIntent:     &domain.CurrentIntent{Name: name, Slots: domain.Slots{}},
		SessionAttributes: map[string]string{},
	}
}

func TestNewRejectsBadRegistrations(t *testing.T) {
	h := &stubHandler{}
	tests := []struct {
		name string
		regs []Registration
	}{
		{"empty name", []Registration{{Intent: "", Handler: h}}},
		{"nil handler", []Registration{{Intent: "A"}}},
		{"duplicate", []Registration{{Intent: "A", Handler: h}, {Intent: "A", Handler: h}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(testLogger(), tt.regs...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDispatchExactMatch(t *testing.T) {
	h := &stubHandler{resp: dialog.Delegate(nil, domain.Slots{})}
	d, err := New(testLogger(), Registration{Intent: "RecommendPortfolio", Handler: h})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := d.Dispatch(context.Background(), event("RecommendPortfolio", "DialogCodeHook"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if resp.DialogAction.Type != domain.DialogActionDelegate {
		t.Errorf("Type = %q", resp.DialogAction.Type)
	}
	if h.calls != 1 {
		t.Errorf("handler called %d times, want 1", h.calls)
	}

	for _, name := range []string{"recommendportfolio", "RecommendPortfolio ", "OrderFlowers", ""} {
		t.Run(name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), event(name, "DialogCodeHook"))
			if !errors.Is(err, domain.ErrUnsupportedIntent) {
				t.Fatalf("Dispatch(%q) error = %v, want ErrUnsupportedIntent", name, err)
			}
		})
	}
	if h.calls != 1 {
		t.Errorf("handler called for unsupported intents: %d calls", h.calls)
	}
}

func TestDispatchMissingIntent(t *testing.T) {
	d, _ := New(testLogger())

	for _, req := range []*domain.IntentRequest{nil, {InvocationSource: "DialogCodeHook"}} {
		_, err := d.Dispatch(context.Background(), req)
		var apiErr *domain.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != domain.ErrorCodeMissingIntent {
			t.Errorf("error = %v, want missing_intent", err)
		}
	}
}

func TestDispatchNilResponse(t *testing.T) {
	d, _ := New(testLogger(), Registration{Intent: "X", Handler: HandlerFunc(func(*domain.IntentRequest) *domain.Response { return nil })})

	_, err := d.Dispatch(context.Background(), event("X", "FulfillmentCodeHook"))
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Type != domain.ErrorTypeServer {
		t.Errorf("error = %v, want server error", err)
	}
}

func TestDispatchMetrics(t *testing.T) {
	elicit := dialog.ElicitSlot(nil, "Metrics", domain.Slots{}, domain.SlotAge, domain.PlainText("again"))
	d, _ := New(testLogger(), Registration{Intent: "Metrics", Handler: &stubHandler{resp: elicit}})

	actionsBefore := testutil.ToFloat64(telemetry.DialogActionsTotal.WithLabelValues("Metrics", "ElicitSlot"))
	violationsBefore := testutil.ToFloat64(telemetry.SlotViolationsTotal.WithLabelValues("Metrics", domain.SlotAge))
	unknownBefore := testutil.ToFloat64(telemetry.UnknownInvocationSourceTotal)
	unsupportedBefore := testutil.ToFloat64(telemetry.DispatchErrorsTotal.WithLabelValues(string(domain.ErrorCodeUnsupportedIntent)))

	if _, err := d.Dispatch(context.Background(), event("Metrics", "Bogus")); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	_, _ = d.Dispatch(context.Background(), event("Nope", "DialogCodeHook"))

	if got := testutil.ToFloat64(telemetry.DialogActionsTotal.WithLabelValues("Metrics", "ElicitSlot")) - actionsBefore; got != 1 {
		t.Errorf("dialog actions delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(telemetry.SlotViolationsTotal.WithLabelValues("Metrics", domain.SlotAge)) - violationsBefore; got != 1 {
		t.Errorf("slot violations delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(telemetry.UnknownInvocationSourceTotal) - unknownBefore; got != 1 {
		t.Errorf("unknown source delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(telemetry.DispatchErrorsTotal.WithLabelValues(string(domain.ErrorCodeUnsupportedIntent))) - unsupportedBefore; got != 1 {
		t.Errorf("unsupported intent delta = %v, want 1", got)
	}
}

func TestIntents(t *testing.T) {
	h := &stubHandler{}
	d, _ := New(testLogger(), Registration{Intent: "B", Handler: h}, Registration{Intent: "A", Handler: h})
	got := d.Intents()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Intents() = %v, want [A B]", got)
	}
}
