// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// A ContextExtractor turns a request-scoped value into an attribute on every
// entry logged with that context:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"},
//	    logger.Extractor("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "page rendered")
//	// level=INFO msg="page rendered" request_id=3f1c...
//
// NewWithSentry also forwards warnings and errors to Sentry. Without a DSN it
// is identical to New, so the same wiring runs in development.
package logger
