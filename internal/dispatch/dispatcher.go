// Package dispatch routes intent events to the handler registered for the
// intent name.
//
// Handlers are registered when the Dispatcher is built and the table is
// read-only afterwards, so a Dispatcher is safe for concurrent use.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/telemetry"
)

const tracerName = "github.com/tjfontaine/lex-portfolio-advisor/internal/dispatch"

// IntentHandler fulfills one intent.
type IntentHandler interface {
	Handle(req *domain.IntentRequest) *domain.Response
}

// HandlerFunc adapts a function to IntentHandler.
type HandlerFunc func(req *domain.IntentRequest) *domain.Response

// Handle calls f(req).
func (f HandlerFunc) Handle(req *domain.IntentRequest) *domain.Response {
	return f(req)
}

// Registration binds an intent name to its handler.
type Registration struct {
	Intent  string
	Handler IntentHandler
}

// Dispatcher is the single entry point: one event in, one response out.
type Dispatcher struct {
	handlers map[string]IntentHandler
	logger   *slog.Logger
}

// New creates a dispatcher from the given registrations. Names must be
// non-empty and unique.
func New(logger *slog.Logger, regs ...Registration) (*Dispatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	handlers := make(map[string]IntentHandler, len(regs))
	for _, reg := range regs {
		if reg.Intent == "" {
			return nil, fmt.Errorf("intent name cannot be empty")
		}
		if reg.Handler == nil {
			return nil, fmt.Errorf("intent %q must have a handler", reg.Intent)
		}
		if _, exists := handlers[reg.Intent]; exists {
			return nil, fmt.Errorf("intent %q already registered", reg.Intent)
		}
		handlers[reg.Intent] = reg.Handler
	}

	return &Dispatcher{handlers: handlers, logger: logger}, nil
}

// Intents returns the registered intent names, sorted.
func (d *Dispatcher) Intents() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes req to the handler registered under its exact intent name.
// An unknown name returns an error matching domain.ErrUnsupportedIntent.
func (d *Dispatcher) Dispatch(ctx context.Context, req *domain.IntentRequest) (*domain.Response, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "dispatch")
	defer span.End()

	if req == nil || req.CurrentIntent == nil {
		err := domain.ErrMissingIntent()
		d.reject(ctx, span, err)
		return nil, err
	}

	name := req.CurrentIntent.Name
	span.SetAttributes(
		attribute.String("lex.intent", name),
		attribute.String("lex.invocation_source", req.InvocationSource),
	)
	if req.UserID != "" {
		span.SetAttributes(attribute.String("lex.user_id", req.UserID))
	}

	handler, ok := d.handlers[name]
	if !ok {
		err := domain.ErrIntentNotSupported(name)
		d.reject(ctx, span, err)
		return nil, err
	}

	if _, known := domain.ParseInvocationSource(req.InvocationSource); !known {
		telemetry.UnknownInvocationSourceTotal.Inc()
		d.logger.WarnContext(ctx, "unrecognized invocation source, fulfilling",
			slog.String("intent", name),
			slog.String("invocation_source", req.InvocationSource),
		)
	}

	start := time.Now()
	resp := handler.Handle(req)
	telemetry.DispatchLatency.Observe(time.Since(start).Seconds())

	if resp == nil {
		err := domain.ErrServer(fmt.Sprintf("handler for intent %s returned no response", name))
		d.reject(ctx, span, err)
		return nil, err
	}

	action := resp.DialogAction
	telemetry.DialogActionsTotal.WithLabelValues(name, string(action.Type)).Inc()
	if action.Type == domain.DialogActionElicitSlot {
		telemetry.SlotViolationsTotal.WithLabelValues(name, action.SlotToElicit).Inc()
	}
	span.SetAttributes(attribute.String("lex.dialog_action", string(action.Type)))

	d.logger.DebugContext(ctx, "intent dispatched",
		slog.String("intent", name),
		slog.String("invocation_source", req.InvocationSource),
		slog.String("dialog_action", string(action.Type)),
		slog.String("slot_to_elicit", action.SlotToElicit),
	)

	return resp, nil
}

func (d *Dispatcher) reject(ctx context.Context, span trace.Span, err *domain.APIError) {
	telemetry.DispatchErrorsTotal.WithLabelValues(string(err.Code)).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)
	d.logger.WarnContext(ctx, "dispatch rejected",
		slog.String("code", string(err.Code)),
		slog.String("error", err.Message),
	)
}
