package fove

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the package's lifecycle debug output to l. By default
// nothing is logged. Passing nil restores the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
