package objpool

import (
	"io"
	"log/slog"
)

// defaultLogger receives debug-mode diagnostics (integrity failures, page
// reclamation) before the corresponding sentinel error is returned. It
// discards everything until SetLogger is called, following the same
// discard-by-default pattern as the teacher's own logging package.
var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger overrides the package-wide logger. Passing nil restores the
// discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	defaultLogger = l
}
