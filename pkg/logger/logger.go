package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init builds the process logger. Anything other than "production" gets the
// human readable development encoder at debug level.
func Init(environment string) {
	var (
		base *zap.Logger
		err  error
	)

	if environment == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
		base, err = cfg.Build(zap.AddCallerSkip(1))
	}
	if err != nil {
		base = zap.NewExample()
	}

	mu.Lock()
	log = base.Sugar()
	mu.Unlock()
}

// Use swaps the underlying logger, mostly for tests that want to observe output.
func Use(l *zap.Logger) {
	mu.Lock()
	log = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
	mu.Unlock()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, args ...any) {
	current().Debugw(msg, fields(args)...)
}

func Info(msg string, args ...any) {
	current().Infow(msg, fields(args)...)
}

func Warn(msg string, args ...any) {
	current().Warnw(msg, fields(args)...)
}

func Error(msg string, args ...any) {
	current().Errorw(msg, fields(args)...)
}

func Fatal(msg string, args ...any) {
	current().Fatalw(msg, fields(args)...)
}

func Sync() error {
	return current().Sync()
}

// fields turns loose arguments into something zap accepts without complaining:
// "key", value pairs stay as they are, a bare error becomes zap.Error and any
// other dangling value is keyed by its position.
func fields(args []any) []any {
	out := make([]any, 0, len(args))

	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
				continue
			}
			out = append(out, zap.String(fmt.Sprintf("arg%d", i), v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}

	return out
}
