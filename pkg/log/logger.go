package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	imberr "github.com/YuminosukeSato/imblearn/pkg/errors"
)

// zerologLogger is the default Logger implementation backed by rs/zerolog.
type zerologLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZerologLogger wraps an existing zerolog.Logger in the Logger interface.
func NewZerologLogger(zl zerolog.Logger, level Level) Logger {
	return &zerologLogger{zl: zl, level: level}
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	if l.level <= LevelDebug {
		l.emit(l.zl.Debug(), msg, fields)
	}
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	if l.level <= LevelInfo {
		l.emit(l.zl.Info(), msg, fields)
	}
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	if l.level <= LevelWarn {
		l.emit(l.zl.Warn(), msg, fields)
	}
}

func (l *zerologLogger) Error(msg string, fields ...any) {
	if l.level <= LevelError {
		l.emit(l.zl.Error(), msg, fields)
	}
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger(), level: l.level}
}

func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return l.level <= level
}

// emit writes a single event, attaching fields as key-value pairs. Error
// values get structured treatment: the message plus any cockroachdb/errors
// stack trace under a dedicated attribute.
func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		value := fields[i+1]

		if err, ok := value.(error); ok {
			ev = ev.AnErr(key, err)
			if st := extractStacktrace(err); st != "" {
				ev = ev.Str(StacktraceAttrKey, st)
			}
			continue
		}
		ev = ev.Interface(key, value)
	}
	ev.Msg(msg)
}

// extractStacktrace pulls the first safe detail (the stack trace) recorded
// by cockroachdb/errors, if any.
func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ===========================================================================
//
//	Default provider
//
// ===========================================================================

type defaultProvider struct {
	mu     sync.RWMutex
	level  Level
	logger Logger
}

var provider = &defaultProvider{
	level: LevelInfo,
	logger: NewZerologLogger(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
		LevelInfo,
	),
}

func init() {
	// Route pkg/errors warnings (e.g. UndefinedMetricWarning) through the
	// structured logger instead of the stdlib log fallback.
	imberr.SetZerologWarnFunc(func(warning error) {
		GetLogger().Warn("imblearn warning", ErrAttrKey, warning)
	})
}

// GetLogger returns the default logger instance.
func GetLogger() Logger {
	provider.mu.RLock()
	defer provider.mu.RUnlock()
	return provider.logger
}

// GetLoggerWithName returns the default logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With(ComponentKey, name)
}

// SetLogger replaces the default logger. Useful for tests and for embedding
// imblearn into applications with their own logging setup.
func SetLogger(logger Logger) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.logger = logger
}

// SetLevel sets the minimum level of the default zerolog-backed logger.
func SetLevel(level Level) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.level = level
	provider.logger = NewZerologLogger(
		zerolog.New(os.Stderr).With().Timestamp().Logger(),
		level,
	)
}

// ===========================================================================
//
//	slog interop
//
// ===========================================================================

// SetupSlog installs a JSON slog handler wrapped with stack trace formatting
// as the process-wide slog default. Intended for applications that drive the
// experiment pipeline via log/slog.
func SetupSlog(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
