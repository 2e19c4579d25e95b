package registration

import (
	"log/slog"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/dispatch"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/portfolio"
)

// Options selects behavior of the built-in intent handlers.
type Options struct {
	// StrictNumeric rejects numeric slots that do not parse instead of
	// letting them pass their range checks.
	StrictNumeric bool
}

// Builtins returns the registrations for every intent this service fulfills.
// Only RecommendPortfolio is supported.
func Builtins(opts Options) []dispatch.Registration {
	return []dispatch.Registration{
		{
			Intent:  portfolio.IntentName,
			Handler: portfolio.NewHandler(portfolio.WithStrictNumeric(opts.StrictNumeric)),
		},
	}
}

// NewDispatcher builds a dispatcher over the built-in intents. This is the
// one call shared by the HTTP server, the Lambda entry point and the CLI.
func NewDispatcher(logger *slog.Logger, opts Options) (*dispatch.Dispatcher, error) {
	return dispatch.New(logger, Builtins(opts)...)
}
