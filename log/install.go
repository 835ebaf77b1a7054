package log

import (
	"sync/atomic"

	"github.com/conlog/conlog/pkg"
)

// installed holds the process-wide sink. It is written at most once for the
// life of the process.
//
//nolint:gochecknoglobals
var installed atomic.Pointer[Logger]

// Install registers the logger as the process-wide sink.
//
// Exactly one Install succeeds, even under concurrent attempts. Later calls
// leave the existing sink in place, report the conflict on its debug
// channel, and return an error chain containing pkg.ErrAlreadyInstalled.
func (l Logger) Install() error {
	if installed.CompareAndSwap(nil, &l) {
		return nil
	}

	if current := installed.Load(); current != nil {
		current.Debug(pkg.Name, "install conflict: a sink is already installed")
	}

	return pkg.MakeError(pkg.ErrAlreadyInstalled)
}

// Installed reports whether a process-wide sink has been installed.
func Installed() bool {
	return installed.Load() != nil
}

// Default returns the installed sink, or a no-op zero Logger when none has
// been installed.
func Default() Logger {
	if l := installed.Load(); l != nil {
		return *l
	}

	return Logger{}
}

// Init creates a Logger from a filter directive spec and installs it as the
// process-wide sink.
func Init(spec string, opts ...Option) error {
	return New(spec, opts...).Install()
}

// InitLevel creates a Logger with a single global severity threshold and
// installs it as the process-wide sink.
func InitLevel(level Level, opts ...Option) error {
	return NewLevel(level, opts...).Install()
}

// InitEnv creates a Logger from the filter directive spec held in the named
// environment variable and installs it as the process-wide sink. A lookup
// failure is returned to the caller and nothing is installed.
func InitEnv(env Env, name string, opts ...Option) error {
	logger, err := NewEnv(env, name, opts...)
	if err != nil {
		return err
	}

	return logger.Install()
}

// Error logs msg for target at Error level using the installed sink.
// It is a silent no-op before installation.
func Error(target, msg string) {
	Default().Error(target, msg)
}

// Warn logs msg for target at Warn level using the installed sink.
func Warn(target, msg string) {
	Default().Warn(target, msg)
}

// Info logs msg for target at Info level using the installed sink.
func Info(target, msg string) {
	Default().Info(target, msg)
}

// Debug logs msg for target at Debug level using the installed sink.
func Debug(target, msg string) {
	Default().Debug(target, msg)
}

// Trace logs msg for target at Trace level using the installed sink.
func Trace(target, msg string) {
	Default().Trace(target, msg)
}
