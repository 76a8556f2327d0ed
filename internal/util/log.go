package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int32

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// zapTraceLevel sits one step below zap's debug level.
const zapTraceLevel = zapcore.DebugLevel - 1

var levelNames = map[string]LogLevel{
	"trace": LevelTrace,
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LevelTrace:
		return zapTraceLevel
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l LogLevel) String() string {
	for name, lvl := range levelNames {
		if lvl == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int32(l))
}

// Logger is a printf-style, level-filtered logger on top of zap.
type Logger struct {
	level zap.AtomicLevel
	base  *zap.SugaredLogger
}

// NewLogger creates a level-aware logger writing to stderr.
func NewLogger(level LogLevel) *Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a level-aware logger writing to the provided destination.
func NewLoggerWithWriter(level LogLevel, w io.Writer) *Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	enc.EncodeLevel = encodeLevel
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), atom)
	return &Logger{level: atom, base: zap.New(core).Sugar()}
}

// NewNopLogger discards everything.
func NewNopLogger() *Logger {
	return &Logger{level: zap.NewAtomicLevelAt(zapcore.FatalLevel), base: zap.NewNop().Sugar()}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == zapTraceLevel {
		enc.AppendString("[TRACE]")
		return
	}
	enc.AppendString("[" + l.CapitalString() + "]")
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

func (l *Logger) Level() LogLevel {
	switch lvl := l.level.Level(); {
	case lvl <= zapTraceLevel:
		return LevelTrace
	case lvl == zapcore.DebugLevel:
		return LevelDebug
	case lvl == zapcore.InfoLevel:
		return LevelInfo
	case lvl == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.base.Logf(zapTraceLevel, format, args...)
}
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.base.Debugf(format, args...)
}
func (l *Logger) Infof(format string, args ...interface{}) {
	l.base.Infof(format, args...)
}
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.base.Warnf(format, args...)
}
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.base.Errorf(format, args...)
}

// ParseLogLevel converts a string into a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	if lvl, ok := levelNames[strings.ToLower(s)]; ok {
		return lvl
	}
	return LevelInfo
}
