// Package logging builds the zap logger used by leaguebot and adapts it to
// the logger interface of the cache.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/creativecreature/sheetcache"
)

// New builds a production zap logger at the given level. verbose forces
// debug level regardless of the configured one.
func New(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// CacheLogger adapts a zap logger to sheetcache.Logger.
type CacheLogger struct {
	sugar *zap.SugaredLogger
}

var _ sheetcache.Logger = (*CacheLogger)(nil)

// NewCacheLogger returns a CacheLogger writing through logger, tagged with
// the component name.
func NewCacheLogger(logger *zap.Logger) *CacheLogger {
	return &CacheLogger{sugar: logger.Named("sheetcache").Sugar()}
}

func (l *CacheLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *CacheLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *CacheLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }
