package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs the library's default JSON logger as the slog default.
// The example programs and embedding services call this once at startup;
// the transformers themselves never log.
//
// Output keys follow the Cloud Logging structured-log format (severity,
// message, sourceLocation) so services running the encoder can ship logs
// without a rewrite step.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name ("debug", "info", "warn", "error") to a
// slog.Level. Unknown names are a configuration bug and panic.
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

// Attribute keys used on the error path. ErrFmtHandler watches for
// ErrAttrKey and adds StacktraceAttrKey alongside it.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps an encoder error for slog. Errors built by pkg/errors carry
// a stack trace that ErrFmtHandler extracts into its own attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
