package engine

import (
	"io"
	"log/slog"
)

// Numeric log levels shared by the CLI and the embedding API.
const (
	LogNone = iota
	LogError
	LogWarning
	LogInfo
	LogDebug
)

// LoggerForLevel maps the numeric 0–4 log level onto a slog text logger
// writing to w. Level 0 discards everything; levels outside the range clamp.
func LoggerForLevel(level int, w io.Writer) *slog.Logger {
	var l slog.Level
	switch {
	case level <= LogNone:
		return slog.New(slog.DiscardHandler)
	case level == LogError:
		l = slog.LevelError
	case level == LogWarning:
		l = slog.LevelWarn
	case level == LogInfo:
		l = slog.LevelInfo
	default:
		l = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
