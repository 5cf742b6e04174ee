// Package logger builds log/slog loggers from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler in LogHandlerDecorator, which adds attributes extracted from the
// context of every logging call:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "value checked", logger.Line(3), logger.Result("valid"))
//
// The helpers in attr.go keep attribute keys consistent across the code base.
package logger
