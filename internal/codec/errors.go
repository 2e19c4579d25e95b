package codec

import (
	"encoding/json"
	"net/http"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
)

// ErrorResponse is a serialized error ready to write to a transport.
type ErrorResponse struct {
	StatusCode int
	Body       []byte
}

// FormatError converts any error into the advisor's JSON error envelope:
//
//	{"error": {"type": "...", "code": "...", "message": "...", "param": "..."}}
func FormatError(err error) *ErrorResponse {
	apiErr := domain.AsAPIError(err)

	errObj := map[string]string{
		"type":    string(apiErr.Type),
		"message": apiErr.Message,
	}
	if apiErr.Code != "" {
		errObj["code"] = string(apiErr.Code)
	}
	if apiErr.Param != "" {
		errObj["param"] = apiErr.Param
	}

	body, _ := json.Marshal(map[string]interface{}{
		"error": errObj,
	})

	return &ErrorResponse{
		StatusCode: apiErr.HTTPStatusCode(),
		Body:       body,
	}
}

// WriteError writes err as a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	resp := FormatError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}
