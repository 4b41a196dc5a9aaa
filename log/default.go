package log

import (
	"sync"

	"github.com/Invicton-Labs/go-linkedlist/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
)

var defaultLogger Logger = New(NewInput{Disabled: true})
var defaultLoggerLock sync.Mutex

var Debugw func(msg string, keysAndValues ...interface{}) = defaultLogger.Debugw
var Infow func(msg string, keysAndValues ...interface{}) = defaultLogger.Infow
var Warnw func(msg string, keysAndValues ...interface{}) = defaultLogger.Warnw
var Errorw func(msg string, keysAndValues ...interface{}) = defaultLogger.Errorw

var Error func(err error) = defaultLogger.Error

var With func(args ...interface{}) Logger = defaultLogger.With
var WithOptions func(opts ...zap.Option) Logger = defaultLogger.WithOptions
var WithError func(err error) Logger = defaultLogger.WithError

// Default returns the current global default logger. Until InitDefault
// is called, the default logger discards everything.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. This function
// IS NOT thread-safe and cannot be used while other routines
// are using the existing global default logger. The previous
// default logger is not closed.
func InitDefault(input NewInput) stackerr.Error {
	if input.Level < zap.DebugLevel || input.Level > zap.FatalLevel {
		return stackerr.Errorf("Invalid log level: %d", input.Level)
	}

	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	defaultLogger = New(input)

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw

	Error = defaultLogger.Error

	With = defaultLogger.With
	WithOptions = defaultLogger.WithOptions
	WithError = defaultLogger.WithError

	return nil
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) stackerr.Error {
	input := Default().Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	return InitDefault(input)
}

// UnsweetenDefaultLogger will remove fields from the default logger.
func UnsweetenDefaultLogger(fieldKeys []string) stackerr.Error {
	input := Default().Config()
	needsUpdate := false
	for _, key := range fieldKeys {
		if _, ok := input.InitialFields[key]; ok {
			needsUpdate = true
			delete(input.InitialFields, key)
		}
	}
	if needsUpdate {
		return InitDefault(input)
	}
	return nil
}
