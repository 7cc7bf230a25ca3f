// Package log writes leveled, categorised debug logs for folio.
//
// Logging is off until Init is called, which only happens with --debug or
// when FOLIO_LOG names a file. Output goes to a size-rotated file, and every
// line is also published so the in-app log overlay can tail it.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zjrosen/folio/internal/pubsub"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups messages by subsystem.
type Category string

const (
	CatEditor Category = "editor" // engine dispatch and mode changes
	CatNotes  Category = "notes"  // note files on disk
	CatUI     Category = "ui"     // component updates
	CatConfig Category = "config" // config loading and saving
	CatWatch  Category = "watch"  // notes directory watcher
	CatStore  Category = "store"  // sqlite state database
	CatApp    Category = "app"    // top-level application flow
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

const timeFormat = "2006-01-02T15:04:05.000"

// Logger formats entries and writes them to w.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	closer   io.Closer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
	now      func() time.Time
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init opens the rotating log file at path and installs the package
// logger. Only the first call has any effect. The returned func closes the
// file.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		if path == "" {
			initErr = fmt.Errorf("log: empty path")
			return
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
		defaultLogger = New(lj)
		defaultLogger.closer = lj
	})
	if initErr != nil {
		return nil, initErr
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("log: logger initialization failed or already attempted")
	}
	return func() {
		if defaultLogger.closer != nil {
			_ = defaultLogger.closer.Close()
		}
	}, nil
}

// New creates an enabled logger writing to w at debug level.
func New(w io.Writer) *Logger {
	return &Logger{
		w:        w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
		now:      time.Now,
	}
}

// SetDefault replaces the package logger. Tests use it with a buffer.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Enabled reports whether messages are being recorded.
func Enabled() bool {
	return defaultLogger != nil && defaultLogger.enabled
}

// SetEnabled turns logging on or off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel drops messages below level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	defaultLogger.log(LevelDebug, cat, msg, fields)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	defaultLogger.log(LevelInfo, cat, msg, fields)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	defaultLogger.log(LevelWarn, cat, msg, fields)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	defaultLogger.log(LevelError, cat, msg, fields)
}

// ErrorErr logs err under the "error" key.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	defaultLogger.log(LevelError, cat, msg, append(fields, "error", errText))
}

func (l *Logger) log(level Level, cat Category, msg string, fields []any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	entry := format(l.now(), level, cat, msg, fields)
	if l.w != nil {
		_, _ = io.WriteString(l.w, entry)
	}
	l.broker.Publish(pubsub.CreatedEvent, entry)
}

// format renders one line: 2025-12-06T10:45:00.000 [ERROR] [notes] msg k=v
func format(ts time.Time, level Level, cat Category, msg string, fields []any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", ts.Format(timeFormat), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	return sb.String()
}

// LogEvent is a published log line.
type LogEvent = pubsub.Event[string]

// LogListener tails published log lines.
type LogListener = pubsub.ContinuousListener[string]

// NewListener subscribes to log lines until ctx ends. It returns nil when
// logging was never initialised.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil {
		return nil
	}
	return pubsub.NewContinuousListener[string](ctx, defaultLogger.broker)
}
