package log

//go:generate go tool stringer --linecomment --type Level --output level_string.go

import (
	"iter"
	"strings"
)

// Level represents the severity of a log record, ordered by increasing
// verbosity. LevelOff is not a record severity: it appears only in filter
// directives, where it disables a target entirely.
type Level int

const (
	LevelOff   Level = iota // off
	LevelError              // error
	LevelWarn               // warn
	LevelInfo               // info
	LevelDebug              // debug
	LevelTrace              // trace
)

// DefaultLevel is the threshold applied when no filter directive matches.
const DefaultLevel = LevelInfo

// Levels returns an iterator over all record severities, from least to most
// verbose.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, level := range []Level{
			LevelError,
			LevelWarn,
			LevelInfo,
			LevelDebug,
			LevelTrace,
		} {
			if !yield(level) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "off", "error", "warn", "info", "debug", and
// "trace", compared case-insensitively. "warning" is accepted as an alias,
// as are the numeric forms "0" through "5", which hosts commonly carry in
// environment variables.
// The second return value reports whether the string was recognized;
// unrecognized strings return DefaultLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return LevelOff, true
	case "error", "1":
		return LevelError, true
	case "warn", "warning", "2":
		return LevelWarn, true
	case "info", "3":
		return LevelInfo, true
	case "debug", "4":
		return LevelDebug, true
	case "trace", "5":
		return LevelTrace, true
	}

	return DefaultLevel, false
}

// Token returns the uppercase level name used in rendered log lines.
func (l Level) Token() string {
	return strings.ToUpper(l.String())
}
