package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level and format for the application.
func SetLogLevel() {
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToUpper(envLevel) {
		case "DEBUG":
			level = slog.LevelDebug
		case "INFO":
			level = slog.LevelInfo
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		default:
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format := strings.ToLower(os.Getenv("LOG_FORMAT")); format {
	case "", "text":
		handler = slog.NewTextHandler(os.Stderr, options)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, options)
	default:
		slog.Error("Invalid log format", "format", format)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(handler))
}
