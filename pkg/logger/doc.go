// Package logger builds log/slog loggers with consistent defaults.
//
// New returns a JSON logger at info level unless options say otherwise.
// NewFromConfig reads the same settings from a Config filled by the config
// package (LOG_LEVEL, LOG_FORMAT, APP_ENV, APP_SERVICE).
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "csrfdemo"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.WarnContext(ctx, "csrf token rejected", logger.Error(err))
//
// Context extractors run for every record, so request-scoped values such as a
// request id appear without threading a logger through handlers.
package logger
