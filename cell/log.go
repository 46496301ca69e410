package cell

import (
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger routes the package's debug logging (activation and deactivation
// of cells, structural edits of collections) to l. A nil l silences it.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return logger
}
