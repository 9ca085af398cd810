// Package logger builds *slog.Logger instances for toastkit binaries and
// provides the attribute helpers used across the notification packages.
//
// New assembles a text or JSON handler from functional options and wraps it
// with a decorator that pulls attributes out of context.Context on every
// record (for example the request id set by the chi RequestID middleware).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.LogAttrs(ctx, slog.LevelInfo, "alert enqueued",
//	    logger.AlertID(id),
//	    logger.Kind("success"),
//	)
//
// Helpers such as Error return an empty slog.Attr for nil input, so they can be
// passed unconditionally.
package logger
