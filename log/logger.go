package log

import "strings"

// Logger routes records through a Filter into a host Console.
//
// A Logger is immutable after construction, so Enabled and Log are safe to
// call concurrently without locking. The zero value is a silent no-op.
type Logger struct {
	filter *Filter
	config
}

// New creates a Logger from a filter directive spec.
// Construction never fails: malformed directives degrade per NewFilter.
//
// Optional configuration can be applied using functional options like
// [WithConsole], [WithColor], [WithTimeLayout], and [WithClock].
func New(spec string, opts ...Option) Logger {
	return Logger{
		filter: NewFilter(spec),
		config: makeConfig(opts...),
	}
}

// NewLevel creates a Logger that applies a single global severity threshold.
func NewLevel(level Level, opts ...Option) Logger {
	return Logger{
		filter: NewLevelFilter(level),
		config: makeConfig(opts...),
	}
}

// NewEnv creates a Logger from the filter directive spec held in the named
// environment variable. The lookup failure is returned unchanged; no other
// construction path can fail.
func NewEnv(env Env, name string, opts ...Option) (Logger, error) {
	if env == nil {
		env = OSEnv{}
	}

	spec, err := env.Var(name)
	if err != nil {
		return Logger{}, err
	}

	return New(spec, opts...), nil
}

// Filter returns the logger's filter engine.
func (l Logger) Filter() *Filter {
	return l.filter
}

// Enabled reports whether a record for target at the given severity would be
// emitted. The filter's maximum admissible level is checked first so callers
// can skip record construction cheaply.
func (l Logger) Enabled(target string, level Level) bool {
	if l.filter == nil || level == LevelOff {
		return false
	}

	if level > l.filter.MaxLevel() {
		return false
	}

	return l.filter.Enabled(target, level)
}

// Log formats the record and dispatches it to the console channel keyed by
// its severity. The filter is re-checked here so a directly constructed
// Logger still self-filters even when a dispatcher has filtered already.
// Disabled records are dropped with no side effect.
func (l Logger) Log(r *Record) {
	if r == nil || l.filter == nil || l.console == nil {
		return
	}

	if !l.filter.Matches(r) {
		return
	}

	line := l.render(r)

	switch r.Level {
	case LevelError:
		l.console.Error(line)
	case LevelWarn:
		l.console.Warn(line)
	case LevelDebug:
		l.console.Debug(line)
	default:
		// Info and Trace share the general channel.
		l.console.Log(line)
	}
}

// Flush implements the sink contract. Console output is unbuffered, so
// there is nothing to flush.
func (l Logger) Flush() {}

// Error logs msg for target at Error level.
func (l Logger) Error(target, msg string) {
	l.Log(NewRecord(LevelError, target, msg))
}

// Warn logs msg for target at Warn level.
func (l Logger) Warn(target, msg string) {
	l.Log(NewRecord(LevelWarn, target, msg))
}

// Info logs msg for target at Info level.
func (l Logger) Info(target, msg string) {
	l.Log(NewRecord(LevelInfo, target, msg))
}

// Debug logs msg for target at Debug level.
func (l Logger) Debug(target, msg string) {
	l.Log(NewRecord(LevelDebug, target, msg))
}

// Trace logs msg for target at Trace level.
func (l Logger) Trace(target, msg string) {
	l.Log(NewRecord(LevelTrace, target, msg))
}

// render builds the output line:
//
//	[{timestamp} {LEVEL} {target}] {message}
//
// The target is the record's source location as "file:line" when available,
// else its target string. An empty timestamp (layout "none") is omitted
// along with its trailing space.
func (l Logger) render(r *Record) string {
	target := r.Target
	if loc, ok := r.Location(); ok {
		target = loc
	}

	token := r.Level.Token()
	if l.color {
		token = styleFor(r.Level).Render(token)
	}

	var sb strings.Builder

	sb.WriteByte('[')

	if ts := l.formatTime(l.clock()); ts != "" {
		sb.WriteString(ts)
		sb.WriteByte(' ')
	}

	sb.WriteString(token)
	sb.WriteByte(' ')
	sb.WriteString(target)
	sb.WriteString("] ")
	sb.WriteString(r.Message())

	return sb.String()
}
