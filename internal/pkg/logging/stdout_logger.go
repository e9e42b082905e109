package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

//go:generate mockgen -source=stdout_logger.go -destination=../../../gen/mocks/logging/logger.go -package=mocks

type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// NewLogger builds a slog logger writing to w. Unknown formats fall back to text.
func NewLogger(w io.Writer, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	if strings.EqualFold(format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
