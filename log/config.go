package log

import (
	"strings"
	"time"
)

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// Clock defines a function that returns the current wall-clock time.
type Clock func() time.Time

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// DefaultColor is the default setting for colorized level tokens.
const DefaultColor = false

// config holds the construction-time options for a Logger.
// Loggers are immutable, so the config is copied once and never modified.
type config struct {
	console    Console
	clock      Clock
	formatTime FormatTime
	color      bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: the Stdio console, the system clock, [DefaultTimeLayout],
// and color disabled.
func WithDefaults() Option {
	return func(c config) config {
		c.console = Stdio{}
		c.clock = time.Now
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.color = DefaultColor

		return c
	}
}

// WithConsole returns a functional option that sets the host console the
// logger dispatches rendered lines to.
// If a nil console is provided, the Stdio default is used instead.
func WithConsole(console Console) Option {
	return func(c config) config {
		if console == nil {
			console = Stdio{}
		}

		c.console = console

		return c
	}
}

// WithClock returns a functional option that sets the wall-clock source
// used to timestamp rendered lines.
// If a nil clock is provided, time.Now is used instead.
func WithClock(clock Clock) Option {
	return func(c config) config {
		if clock == nil {
			clock = time.Now
		}

		c.clock = clock

		return c
	}
}

// WithTimeLayout returns a functional option that sets the layout used to
// format log timestamps.
//
// The layout string can be one of the named layouts from the [time] package
// (for example, "RFC3339" or "RFC3339Nano"). Otherwise, it is passed verbatim
// to [time.Time.Format] and must follow the standard specification.
//
// If an empty string (after trimming whitespace) is provided, timestamps are
// disabled and no time is included in log output.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.formatTime = makeFormatTimeFunc(layout)

		return c
	}
}

// WithFormatTime returns a functional option that sets the timestamp
// formatter directly, bypassing layout parsing. Intended for hosts with
// their own clock rendering.
func WithFormatTime(format FormatTime) Option {
	return func(c config) config {
		if format == nil {
			format = makeFormatTimeFunc(DefaultTimeLayout)
		}

		c.formatTime = format

		return c
	}
}

// WithColor returns a functional option that controls whether the level
// token of rendered lines is colorized. Coloring is cosmetic: it never
// affects filtering or channel selection.
func WithColor(enable bool) Option {
	return func(c config) config {
		c.color = enable

		return c
	}
}

// timeLayout maps named layouts to their corresponding time.Time constants.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Trim whitespace only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if trimmed == "" {
		return func(time.Time) string { return "" }
	}

	if std, ok := timeLayout[trimmed]; ok {
		layout = std
	}

	return func(t time.Time) string { return t.Format(layout) }
}
