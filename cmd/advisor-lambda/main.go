// Command advisor-lambda runs the intent dispatcher as an AWS Lambda
// function invoked directly by the bot platform.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/config"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/domain"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/registration"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/telemetry"
)

func main() {
	// No config file is shipped with the function; environment only.
	cfg, err := config.Load(os.Getenv("ADVISOR_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	slog.SetDefault(logger)

	dispatcher, err := registration.NewDispatcher(logger, registration.Options{
		StrictNumeric: cfg.Validation.StrictNumeric,
	})
	if err != nil {
		log.Fatalf("Failed to build dispatcher: %v", err)
	}

	lambda.Start(func(ctx context.Context, req domain.IntentRequest) (*domain.Response, error) {
		resp, err := dispatcher.Dispatch(ctx, &req)
		if err != nil {
			logger.ErrorContext(ctx, "dispatch failed",
				slog.String("intent", req.IntentName()),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		return resp, nil
	})
}
