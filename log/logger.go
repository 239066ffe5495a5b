package log

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	innerLogger          *Logger
	loggerInitializeOnce sync.Once
)

// Field is a structured log field
type Field = zap.Field

// Logger wraps a zap logger; the terminal owns stdout so output defaults to a file
type Logger struct {
	zapLogger *zap.Logger
	level     zap.AtomicLevel
}

// Config selects level and output sinks
type Config struct {
	Level  string   `yaml:"level"`
	Output []string `yaml:"output"`
}

// New builds a JSON logger from config
func New(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	outputs := cfg.Output
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	zcfg := zap.Config{
		Level:       atomicLevel,
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: outputs,
		DisableCaller:    true,
	}

	zapLogger, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	logger := &Logger{zapLogger: zapLogger, level: atomicLevel}
	loggerInitializeOnce.Do(func() { innerLogger = logger })
	return logger, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// Provide returns the first logger built by New, or a no-op logger
func Provide() *Logger {
	if innerLogger == nil {
		return Nop()
	}
	return innerLogger
}

// ParseLevel maps a config string to a zap level; empty means info
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zap.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, errors.Wrapf(err, "log level %q", s)
	}
	return l, nil
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zapLogger.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zapLogger.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, fields...) }

// With returns a child logger carrying fields
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zapLogger: l.zapLogger.With(fields...), level: l.level}
}

// SetLevel changes the level at runtime
func (l *Logger) SetLevel(level zapcore.Level) {
	l.level.SetLevel(level)
}

// Enabled reports whether a level would be written
func (l *Logger) Enabled(level zapcore.Level) bool {
	return l.zapLogger.Core().Enabled(level)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// Field constructors re-exported so callers need not import zap

func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Uint64(key string, val uint64) Field          { return zap.Uint64(key, val) }
func Float64(key string, val float64) Field        { return zap.Float64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Err(err error) Field                          { return zap.Error(err) }
func Stringer(key string, val interface{ String() string }) Field {
	return zap.Stringer(key, val)
}
