// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "portfolio"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "delivery failed",
//		logger.Component("contact"),
//		logger.Error(err),
//	)
//
// Extractors run only when a record is actually emitted, so disabled levels
// cost nothing beyond the Enabled check.
package logger
