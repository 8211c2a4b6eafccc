package vec3

import "log/slog"

// The builder protocol reports usage errors through a structured logger
// rather than returning them: the condition is recoverable and the
// operation contract has no error result. By default diagnostics go to
// slog.Default (stderr unless the program reconfigured it).

// pkgLogger overrides the diagnostic destination when non-nil.
var pkgLogger *slog.Logger

// SetLogger redirects builder-misuse diagnostics to l. Passing nil restores
// slog.Default. Intended to be called once during program setup; there is
// no internal synchronization.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}
