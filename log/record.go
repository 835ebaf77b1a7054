package log

import "strconv"

// Record is the ephemeral value describing a single log call: a severity,
// a target (module path or explicit tag), an optional source location, and
// a lazily rendered message.
type Record struct {
	Level   Level
	Target  string
	File    string
	Line    int
	message func() string
}

// NewRecord creates a Record with a preformatted message.
func NewRecord(level Level, target, msg string) *Record {
	return &Record{
		Level:   level,
		Target:  target,
		message: func() string { return msg },
	}
}

// NewRecordLazy creates a Record whose message is rendered only if the
// record is emitted. The function must be safe to call at most once.
func NewRecordLazy(level Level, target string, msg func() string) *Record {
	return &Record{
		Level:   level,
		Target:  target,
		message: msg,
	}
}

// WithSource returns the record annotated with a source location.
func (r *Record) WithSource(file string, line int) *Record {
	r.File = file
	r.Line = line

	return r
}

// Message renders the record's message text.
func (r *Record) Message() string {
	if r.message == nil {
		return ""
	}

	return r.message()
}

// Location returns the record's source location as "file:line" when both
// components are present. The second return value reports availability.
func (r *Record) Location() (string, bool) {
	if r.File == "" || r.Line <= 0 {
		return "", false
	}

	return r.File + ":" + strconv.Itoa(r.Line), true
}
