// Package logger builds log/slog loggers for the fundraising service.
//
// New returns a JSON logger at info level by default. Options switch the
// format, level and output, attach static attributes and register context
// extractors so request-scoped values (the request id, the negotiated
// language) are added to every record logged with a context:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(api.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "donation validated", logger.ProjectID("library"), logger.Amount(5000))
//
// The attribute helpers in attr.go keep key names consistent across packages.
package logger
