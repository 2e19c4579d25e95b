package domain

import (
	"encoding/json"
	"fmt"
)

// Slot names collected by the RecommendPortfolio intent.
const (
	SlotFirstName        = "firstName"
	SlotAge              = "age"
	SlotInvestmentAmount = "investmentAmount"
	SlotRiskLevel        = "riskLevel"
)

// ContentTypePlainText is the only message content type this service emits.
const ContentTypePlainText = "PlainText"

// InvocationSource tells the handler whether the platform wants slot
// validation or final fulfillment.
type InvocationSource string

const (
	InvocationDialogCodeHook      InvocationSource = "DialogCodeHook"
	InvocationFulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// ParseInvocationSource maps a raw invocationSource onto the two known
// values. Anything other than DialogCodeHook resolves to
// FulfillmentCodeHook; ok reports whether the raw value was recognized.
func ParseInvocationSource(raw string) (source InvocationSource, ok bool) {
	switch InvocationSource(raw) {
	case InvocationDialogCodeHook:
		return InvocationDialogCodeHook, true
	case InvocationFulfillmentCodeHook:
		return InvocationFulfillmentCodeHook, true
	default:
		return InvocationFulfillmentCodeHook, false
	}
}

// FulfillmentState is the terminal state reported in a Close action.
type FulfillmentState string

const (
	FulfillmentFulfilled FulfillmentState = "Fulfilled"
	FulfillmentFailed    FulfillmentState = "Failed"
)

// DialogActionType tags the variant carried by a DialogAction.
type DialogActionType string

const (
	DialogActionElicitSlot DialogActionType = "ElicitSlot"
	DialogActionDelegate   DialogActionType = "Delegate"
	DialogActionClose      DialogActionType = "Close"
)

// Slots maps a slot name to its value. A nil value means the slot has not
// been collected yet and is encoded as JSON null.
type Slots map[string]*string

// Get returns the slot value, or nil when absent.
func (s Slots) Get(name string) *string {
	if s == nil {
		return nil
	}
	return s[name]
}

// Clone returns a shallow copy. Values are shared pointers; callers replace
// entries rather than writing through them.
func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StringPtr is a small helper for building slot values.
func StringPtr(s string) *string {
	return &s
}

// Bot identifies the bot that raised the event.
type Bot struct {
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	Version string `json:"version,omitempty"`
}

// CurrentIntent is the intent the platform is currently filling.
type CurrentIntent struct {
	Name               string `json:"name"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// IntentRequest is the inbound intent event. Only CurrentIntent,
// InvocationSource and SessionAttributes drive behavior; the remaining
// fields are decoded for logs and traces.
type IntentRequest struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  string            `json:"invocationSource"`
	UserID            string            `json:"userId,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	Bot               *Bot              `json:"bot,omitempty"`
	CurrentIntent     *CurrentIntent    `json:"currentIntent"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	RequestAttributes map[string]string `json:"requestAttributes,omitempty"`
}

// IntentName returns the current intent name, or "" when absent.
func (r *IntentRequest) IntentName() string {
	if r == nil || r.CurrentIntent == nil {
		return ""
	}
	return r.CurrentIntent.Name
}

// Slots returns the current intent's slots.
func (r *IntentRequest) Slots() Slots {
	if r == nil || r.CurrentIntent == nil {
		return nil
	}
	return r.CurrentIntent.Slots
}

// Message is a plain-text message shown to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText builds a PlainText message.
func PlainText(content string) *Message {
	return &Message{ContentType: ContentTypePlainText, Content: content}
}

// DialogAction is the directive returned to the platform. Type selects the
// variant; fields not used by that variant are omitted from the JSON.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	FulfillmentState FulfillmentState `json:"fulfillmentState,omitempty"`
	Message          *Message         `json:"message,omitempty"`
}

// MarshalJSON emits exactly the fields of the variant selected by Type.
func (a DialogAction) MarshalJSON() ([]byte, error) {
	switch a.Type {
	case DialogActionElicitSlot:
		return json.Marshal(struct {
			Type         DialogActionType `json:"type"`
			IntentName   string           `json:"intentName"`
			Slots        Slots            `json:"slots"`
			SlotToElicit string           `json:"slotToElicit"`
			Message      *Message         `json:"message"`
		}{a.Type, a.IntentName, a.Slots, a.SlotToElicit, a.Message})
	case DialogActionDelegate:
		return json.Marshal(struct {
			Type  DialogActionType `json:"type"`
			Slots Slots            `json:"slots"`
		}{a.Type, a.Slots})
	case DialogActionClose:
		return json.Marshal(struct {
			Type             DialogActionType `json:"type"`
			FulfillmentState FulfillmentState `json:"fulfillmentState"`
			Message          *Message         `json:"message"`
		}{a.Type, a.FulfillmentState, a.Message})
	default:
		return nil, fmt.Errorf("unknown dialog action type %q", a.Type)
	}
}

// Response is the sole output of the fulfillment handler.
type Response struct {
	SessionAttributes map[string]string `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// ValidationResult reports the first slot that failed validation.
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	ViolatedSlot string   `json:"violatedSlot,omitempty"`
	Message      *Message `json:"message,omitempty"`
}
