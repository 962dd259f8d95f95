package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; Init swaps in the JSON handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
