package log

import (
	"errors"
	"sort"
	"time"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error will add the error fields as log fields and will then
	// log it at the Error level.
	Error(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger
	WithError(err error) Logger

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger

	// Sync flushes any buffered log entries.
	Sync() error

	// Close flushes the logger and releases its output. Loggers derived
	// with With, WithOptions, WithError or Clone share the output, so
	// only the root should be closed.
	Close()
}

type logger struct {
	*zap.SugaredLogger
	config   NewInput
	closeOut func()
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
		closeOut:      l.closeOut,
	}
}

func (l logger) Close() {
	// Sync of stdout and stderr fails on some platforms.
	_ = l.SugaredLogger.Sync()
	if l.closeOut != nil {
		l.closeOut()
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

// errFields converts the metadata fields of a stackerr.Error into sorted
// key/value pairs for a sugared logger.
func errFields(err error) []any {
	var serr stackerr.Error
	if !errors.As(err, &serr) {
		return nil
	}
	fields := serr.Fields()
	keys := collections.MapKeys(fields)
	sort.Strings(keys)
	kvp := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		kvp = append(kvp, k, fields[k])
	}
	return kvp
}

// Error will add the error fields as log fields, and will then log it
// at the Error level.
func (l logger) Error(err error) {
	if err == nil {
		return
	}
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), errFields(err)...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone(), l.closeOut}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone(), l.closeOut}
}

// WithError will return a new logger with the error message and any
// stackerr fields attached.
func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.With(append([]any{zap.Error(err)}, errFields(err)...)...)
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	// Disabled builds a logger that discards everything.
	Disabled bool
	InitialFields map[string]any
	SkippedFrames int
	// Output is a zap sink URL, "stdout" when empty.
	Output string
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		Disabled:      ni.Disabled,
		InitialFields: collections.CopyMap(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
		Output:        ni.Output,
	}
}

func New(input NewInput) Logger {
	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}
	if input.Disabled {
		return &logger{zap.NewNop().Sugar(), input, nil}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktraces",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder

	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	output := input.Output
	if output == "" {
		output = "stdout"
	}
	sink, closeOut, err := zap.Open(output)
	if err != nil {
		panic(err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add the caller field
	buildOpts = append(buildOpts, zap.AddCaller())

	// Add the stacktraces
	buildOpts = append(buildOpts, zap.AddStacktrace(zap.WarnLevel))

	if !input.IsDevelopment {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		}))
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		keys := collections.MapKeys(input.InitialFields)
		sort.Strings(keys)
		fs := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level))
	zapLogger := zap.New(core, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return &logger{zapLogger.Sugar(), input, closeOut}
}
