package sheetcache

// Logger is the logging interface used by the cache. It is satisfied by
// *slog.Logger, and is easy to adapt to most structured loggers.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
