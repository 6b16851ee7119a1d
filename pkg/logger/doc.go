// Package logger builds configured log/slog loggers for the application.
//
// The factory supports JSON output for production log aggregation and text
// output for development, with the level and format driven either by
// functional options or by environment variables through Config.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "qrstudio")),
//	)
//
// Or from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.NewFromConfig(cfg)
package logger
