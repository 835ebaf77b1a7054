package log

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// TargetKey is the attribute key the slog bridge reads to select a record
// target. The attribute is consumed, not rendered.
const TargetKey = "target"

// slogTrace is the slog level mapped to LevelTrace, mirroring slog's
// convention of spacing custom levels four units apart.
const slogTrace = slog.LevelDebug - 4

// Handler returns a slog.Handler that routes slog records through the
// logger's filter and console dispatch, bridging the standard structured
// logging ecosystem onto the host console.
func (l Logger) Handler() slog.Handler {
	return &handler{logger: l}
}

// Slog returns a slog.Logger backed by [Logger.Handler].
func (l Logger) Slog() *slog.Logger {
	return slog.New(l.Handler())
}

// handler adapts a Logger to the slog.Handler interface.
type handler struct {
	logger Logger
	target string
	attrs  []slog.Attr
	groups []string
}

// Enabled implements slog.Handler using the filter's maximum admissible
// level. The per-target decision is deferred to Handle, where the target is
// known.
func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.logger.filter == nil {
		return false
	}

	return levelFromSlog(level) <= h.logger.filter.MaxLevel()
}

// Handle implements slog.Handler. The record's source location is derived
// from its PC, its target from the TargetKey attribute or accumulated
// WithGroup names, and the remaining attributes are appended to the message
// as key=value pairs.
func (h *handler) Handle(_ context.Context, r slog.Record) error {
	target := h.target

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			target = a.Value.String()

			return true
		}

		attrs = append(attrs, h.prefixed(a))

		return true
	})

	if target == "" {
		target = strings.Join(h.groups, "/")
	}

	rec := NewRecordLazy(levelFromSlog(r.Level), target, func() string {
		var sb strings.Builder

		sb.WriteString(r.Message)

		for _, a := range attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Key)
			sb.WriteByte('=')
			sb.WriteString(a.Value.String())
		}

		return sb.String()
	})

	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		if frame, _ := frames.Next(); frame.File != "" {
			rec.WithSource(frame.File, frame.Line)
		}
	}

	h.logger.Log(rec)

	return nil
}

// WithAttrs implements slog.Handler.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = h.attrs[:len(h.attrs):len(h.attrs)]

	for _, a := range attrs {
		if a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			clone.target = a.Value.String()

			continue
		}

		clone.attrs = append(clone.attrs, h.prefixed(a))
	}

	return &clone
}

// WithGroup implements slog.Handler.
func (h *handler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

// prefixed qualifies an attribute key with the open group names.
func (h *handler) prefixed(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}

	a.Key = strings.Join(h.groups, ".") + "." + a.Key

	return a
}

// levelFromSlog maps a slog level onto the closest record severity.
func levelFromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level > slogTrace:
		return LevelDebug
	default:
		return LevelTrace
	}
}
