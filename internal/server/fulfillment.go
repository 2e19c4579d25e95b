package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/codec"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// maxEventBytes caps the accepted event body.
const maxEventBytes = 1 << 20

// FulfillmentHandler is the HTTP front door for intent events.
type FulfillmentHandler struct {
	dispatcher Dispatcher
}

func NewFulfillmentHandler(dispatcher Dispatcher) *FulfillmentHandler {
	return &FulfillmentHandler{dispatcher: dispatcher}
}

// HandleEvent decodes an intent event, dispatches it and writes the dialog
// action as JSON.
func (h *FulfillmentHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes+1))
	if err != nil {
		err = domain.ErrInvalidRequest(fmt.Sprintf("read event: %v", err)).
			WithCode(domain.ErrorCodeMalformedEvent)
		AddError(ctx, err)
		codec.WriteError(w, err)
		return
	}
	if len(body) > maxEventBytes {
		err := domain.ErrInvalidRequest("event body too large").
			WithCode(domain.ErrorCodeMalformedEvent).
			WithStatusCode(http.StatusRequestEntityTooLarge)
		AddError(ctx, err)
		codec.WriteError(w, err)
		return
	}

	req, err := codec.DecodeEvent(body)
	if err != nil {
		AddError(ctx, err)
		codec.WriteError(w, err)
		return
	}
	AddLogField(ctx, "intent", req.IntentName())
	AddLogField(ctx, "invocation_source", req.InvocationSource)

	resp, err := h.dispatcher.Dispatch(ctx, req)
	if err != nil {
		AddError(ctx, err)
		codec.WriteError(w, err)
		return
	}

	data, err := codec.EncodeResponse(resp)
	if err != nil {
		AddError(ctx, err)
		codec.WriteError(w, err)
		return
	}
	AddLogField(ctx, "dialog_action", string(resp.DialogAction.Type))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
