// Package log provides a thin wrapper around logrus with
// context-aware helpers that carry a request ID field.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	logcontext "github.com/triply/travelhub/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

// Formatter renders entries as [<time>] [LEVEL] <message> [req:<id>]
type Formatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))
	b.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		if requestID, ok := entry.Data["request_id"].(string); ok && requestID != "" {
			fmt.Fprintf(b, " [req:%s]", requestID)
		}
		for key, value := range entry.Data {
			if key != "request_id" {
				fmt.Fprintf(b, " %s=%v", key, value)
			}
		}
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return logcontext.RequestIDFromContext(ctx)
}

func entryFor(ctx context.Context) *logrus.Entry {
	return Logger.WithField("request_id", requestIDFromContext(ctx))
}

// Infof logs formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Infof(format, args...)
}

// Info logs a message at info level
func Info(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Info(args...)
}

// Debugf logs formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Debugf(format, args...)
}

// Warnf logs formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Warnf(format, args...)
}

// Errorf logs formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Errorf(format, args...)
}

// Fatalf logs formatted message at fatal level and exits
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Fatalf(format, args...)
}

// SetLevel sets the global log level
func SetLevel(level logrus.Level) {
	Logger.SetLevel(level)
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

// WithFields creates a logger entry with predefined fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// Init initializes the logger with default settings
func Init() {
	Logger.SetFormatter(&Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Logger.SetLevel(logrus.InfoLevel)
}
