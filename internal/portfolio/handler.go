// Package portfolio implements the RecommendPortfolio intent: slot
// validation during the dialog and an allocation recommendation at
// fulfillment.
package portfolio

import (
	"fmt"
	"strings"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/dialog"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// IntentName is the intent this package fulfills.
const IntentName = "RecommendPortfolio"

// Handler performs dialog management and fulfillment for RecommendPortfolio.
type Handler struct {
	validator Validator
}

// Option configures a Handler.
type Option func(*Handler)

// WithStrictNumeric rejects age and investment values that do not parse.
func WithStrictNumeric(strict bool) Option {
	return func(h *Handler) {
		h.validator.Strict = strict
	}
}

// NewHandler creates a RecommendPortfolio handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle maps one intent event to one dialog action. The event is not
// modified; a violated slot is cleared in a copy of the slot map.
func (h *Handler) Handle(req *domain.IntentRequest) *domain.Response {
	slots := req.Slots()
	source, _ := domain.ParseInvocationSource(req.InvocationSource)

	switch source {
	case domain.InvocationDialogCodeHook:
		result := h.validator.Validate(slots.Get(domain.SlotAge), slots.Get(domain.SlotInvestmentAmount), req)
		if !result.IsValid {
			cleared := slots.Clone()
			if cleared == nil {
				cleared = domain.Slots{}
			}
			cleared[result.ViolatedSlot] = nil

			return dialog.ElicitSlot(
				req.SessionAttributes,
				req.IntentName(),
				cleared,
				result.ViolatedSlot,
				result.Message,
			)
		}
		return dialog.Delegate(req.SessionAttributes, slots)

	default:
		return dialog.Close(
			req.SessionAttributes,
			domain.FulfillmentFulfilled,
			domain.PlainText(recommendationMessage(slots)),
		)
	}
}

func recommendationMessage(slots domain.Slots) string {
	var firstName, riskLevel string
	if v := slots.Get(domain.SlotFirstName); v != nil {
		firstName = *v
	}
	if v := slots.Get(domain.SlotRiskLevel); v != nil {
		riskLevel = *v
	}

	msg := fmt.Sprintf("%s thank you for your information;\n"+
		"based on the risk level you defined, my recommendation is to choose an investment portfolio with %s",
		firstName, Recommend(riskLevel))
	return strings.TrimSpace(msg)
}
