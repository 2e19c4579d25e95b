// Package dialog builds the dialog actions returned to the bot platform.
//
// Every builder is a total function of its arguments. Session attributes are
// passed through unchanged; callers own any copying of the slot map.
package dialog

import "github.com/tjfontaine/lex-portfolio-advisor/internal/domain"

// ElicitSlot asks the platform to re-prompt the user for slotToElicit.
func ElicitSlot(session map[string]string, intentName string, slots domain.Slots, slotToElicit string, message *domain.Message) *domain.Response {
	return &domain.Response{
		SessionAttributes: session,
		DialogAction: domain.DialogAction{
			Type:         domain.DialogActionElicitSlot,
			IntentName:   intentName,
			Slots:        slots,
			SlotToElicit: slotToElicit,
			Message:      message,
		},
	}
}

// Delegate lets the platform choose the next step from its own slot-filling
// configuration.
func Delegate(session map[string]string, slots domain.Slots) *domain.Response {
	return &domain.Response{
		SessionAttributes: session,
		DialogAction: domain.DialogAction{
			Type:  domain.DialogActionDelegate,
			Slots: slots,
		},
	}
}

// Close ends the conversation with a final state and message.
func Close(session map[string]string, state domain.FulfillmentState, message *domain.Message) *domain.Response {
	return &domain.Response{
		SessionAttributes: session,
		DialogAction: domain.DialogAction{
			Type:             domain.DialogActionClose,
			FulfillmentState: state,
			Message:          message,
		},
	}
}
