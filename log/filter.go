package log

import "strings"

// directive is one filter rule: an optional target prefix and the minimum
// severity admitted for targets it matches. An empty target matches every
// record.
type directive struct {
	target string
	level  Level
}

// Filter decides whether a record passes the configured severity rules.
//
// A Filter is immutable once built: it always returns the same decision for
// the same (target, level) pair and is safe for concurrent use without
// locking.
type Filter struct {
	directives []directive
	max        Level
}

// NewFilter builds a Filter from a comma-separated directive spec. Each
// directive has the form
//
//	[target=]level
//
// where level is one of the names accepted by ParseLevel. A bare level with
// no target sets the global threshold, and "off" disables a target entirely.
// Malformed directives are dropped and parsing continues, so a typo in
// configuration lowers verbosity instead of failing the host. An empty or
// entirely unparsable spec yields a single global DefaultLevel directive.
func NewFilter(spec string) *Filter {
	var dirs []directive

	for tok := range strings.SplitSeq(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		target, name, assigned := strings.Cut(tok, "=")
		if !assigned {
			// A bare token must be a level name.
			if level, ok := ParseLevel(tok); ok {
				dirs = append(dirs, directive{level: level})
			}

			continue
		}

		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		level, ok := ParseLevel(name)
		if !ok {
			continue
		}

		dirs = append(dirs, directive{target: target, level: level})
	}

	if len(dirs) == 0 {
		dirs = []directive{{level: DefaultLevel}}
	}

	return &Filter{directives: dirs, max: maxDirectiveLevel(dirs)}
}

// NewLevelFilter builds a Filter that applies a single global threshold.
// The public contract is identical to a pattern Filter built by NewFilter.
func NewLevelFilter(level Level) *Filter {
	return &Filter{
		directives: []directive{{level: level}},
		max:        level,
	}
}

// Enabled reports whether a record for target at the given severity passes
// the filter.
//
// Among all directives whose target is a prefix of the given target
// (directives without a target match everything), the last declared wins:
// a later, more general directive overrides an earlier, more specific one.
// When no directive applies, the DefaultLevel threshold is used.
func (f *Filter) Enabled(target string, level Level) bool {
	if level == LevelOff {
		return false
	}

	threshold := DefaultLevel

	for _, d := range f.directives {
		if d.target == "" || strings.HasPrefix(target, d.target) {
			threshold = d.level
		}
	}

	return level <= threshold
}

// Matches reports whether the record passes the filter.
func (f *Filter) Matches(r *Record) bool {
	return f.Enabled(r.Target, r.Level)
}

// MaxLevel returns the most verbose severity any directive admits. Callers
// use it to gate record construction before the per-target scan.
func (f *Filter) MaxLevel() Level {
	return f.max
}

// maxDirectiveLevel computes the most verbose severity the directive set can
// admit. Targets matched by no directive fall back to DefaultLevel, so that
// threshold is reachable whenever no directive matches everything.
func maxDirectiveLevel(dirs []directive) Level {
	most := LevelOff
	global := false

	for _, d := range dirs {
		if d.level > most {
			most = d.level
		}

		if d.target == "" {
			global = true
		}
	}

	if !global && most < DefaultLevel {
		most = DefaultLevel
	}

	return most
}
