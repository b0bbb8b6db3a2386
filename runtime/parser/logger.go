package parser

import (
	"log/slog"
	"os"
	"sync"
)

// defaultLogger writes to stderr without time or level attributes. Debug
// output is enabled by setting RESCODE_DEBUG_PARSER.
var defaultLogger = sync.OnceValue(func() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("RESCODE_DEBUG_PARSER") != "" {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level from output for cleaner debug logs
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
})
