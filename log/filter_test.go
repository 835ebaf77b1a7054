package log

import "testing"

func TestFilter_BareLevelThreshold(t *testing.T) {
	tests := []struct {
		name string
		spec string
		min  Level
	}{
		{"error", "error", LevelError},
		{"warn", "warn", LevelWarn},
		{"info", "info", LevelInfo},
		{"debug", "debug", LevelDebug},
		{"trace", "trace", LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.spec)

			for level := range Levels() {
				want := level <= tt.min
				if got := f.Enabled("any/target", level); got != want {
					t.Errorf(
						"spec %q: Enabled(%v) = %v, want %v",
						tt.spec, level, got, want,
					)
				}
			}
		})
	}
}

func TestFilter_LastMatchWins(t *testing.T) {
	// The last declared directive whose target prefixes the record target
	// determines the threshold, even when an earlier one is more specific.
	f := NewFilter("a=info,a/b=error")

	if f.Enabled("a/b", LevelInfo) {
		t.Error("a/b should use the later Error threshold, not Info")
	}

	if !f.Enabled("a/b", LevelError) {
		t.Error("a/b should pass at Error level")
	}

	reversed := NewFilter("a/b=error,a=info")

	if !reversed.Enabled("a/b", LevelInfo) {
		t.Error("reversed order: a/b should use the later Info threshold")
	}

	if reversed.Enabled("a/b", LevelDebug) {
		t.Error("reversed order: a/b should not pass at Debug level")
	}
}

func TestFilter_GlobalDirectiveOverriddenByLaterMatch(t *testing.T) {
	f := NewFilter("warn,a=debug")

	if !f.Enabled("a/b", LevelDebug) {
		t.Error("later a=debug should override the global warn for a/b")
	}

	if f.Enabled("other", LevelInfo) {
		t.Error("unrelated targets should keep the global warn threshold")
	}
}

func TestFilter_MalformedDirectiveDropped(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		equivalent string
	}{
		{"bad level keyword", "bogus=notalevel,info", "info"},
		{"bare unknown token", "bogus,debug", "debug"},
		{"missing target", "=info,warn", "warn"},
		{"dangling equals", "a=,error", "error"},
		{"empty elements", ",,info,,", "info"},
	}

	targets := []string{"", "a", "bogus", "bogus/sub", "x/y/z"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.spec)
			want := NewFilter(tt.equivalent)

			for _, target := range targets {
				for level := range Levels() {
					if f.Enabled(target, level) != want.Enabled(target, level) {
						t.Errorf(
							"spec %q and %q disagree on (%q, %v)",
							tt.spec, tt.equivalent, target, level,
						)
					}
				}
			}
		})
	}
}

func TestFilter_UnparsableSpecFallsBackToInfo(t *testing.T) {
	for _, spec := range []string{"", "garbage", "a=b=c,=,nope"} {
		f := NewFilter(spec)

		if !f.Enabled("any", LevelInfo) {
			t.Errorf("spec %q: Info should pass under the fallback", spec)
		}

		if f.Enabled("any", LevelDebug) {
			t.Errorf("spec %q: Debug should not pass under the fallback", spec)
		}
	}
}

func TestFilter_IdempotentConstruction(t *testing.T) {
	const spec = "warn,a=debug,a/b=off,c=trace"

	f1 := NewFilter(spec)
	f2 := NewFilter(spec)

	for _, target := range []string{"", "a", "a/b", "a/b/c", "c", "d"} {
		for level := range Levels() {
			if f1.Enabled(target, level) != f2.Enabled(target, level) {
				t.Errorf(
					"filters built from %q disagree on (%q, %v)",
					spec, target, level,
				)
			}
		}
	}

	if f1.MaxLevel() != f2.MaxLevel() {
		t.Errorf(
			"MaxLevel differs: %v vs %v",
			f1.MaxLevel(), f2.MaxLevel(),
		)
	}
}

func TestFilter_OffDisablesTarget(t *testing.T) {
	f := NewFilter("info,noisy=off")

	if f.Enabled("noisy/sub", LevelError) {
		t.Error("off directive should reject even Error records")
	}

	if !f.Enabled("quiet", LevelInfo) {
		t.Error("other targets should keep the global threshold")
	}
}

func TestFilter_DefaultWhenNoDirectiveMatches(t *testing.T) {
	f := NewFilter("a=error")

	if !f.Enabled("b", LevelInfo) {
		t.Error("unmatched targets should use the Info default")
	}

	if f.Enabled("b", LevelDebug) {
		t.Error("unmatched targets should not pass above Info")
	}
}

func TestFilter_MaxLevel(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Level
	}{
		{"single global", "warn", LevelWarn},
		{"most verbose directive", "warn,a=trace", LevelTrace},
		{"global off", "off", LevelOff},
		// With no global directive, unmatched targets can still pass at
		// the Info default, so the gate must admit it.
		{"targeted only", "a=error", LevelInfo},
		{"targeted above default", "a=debug", LevelDebug},
		{"fallback", "", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFilter(tt.spec).MaxLevel(); got != tt.want {
				t.Errorf("MaxLevel(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestNewLevelFilter_MatchesPatternMode(t *testing.T) {
	// The degenerate single-level mode exposes the same contract as a
	// pattern filter built from the equivalent bare directive.
	for level := range Levels() {
		single := NewLevelFilter(level)
		pattern := NewFilter(level.String())

		for _, target := range []string{"", "a", "a/b"} {
			for probe := range Levels() {
				if single.Enabled(target, probe) != pattern.Enabled(target, probe) {
					t.Errorf(
						"level %v: single and pattern modes disagree on (%q, %v)",
						level, target, probe,
					)
				}
			}
		}

		if single.MaxLevel() != level {
			t.Errorf(
				"NewLevelFilter(%v).MaxLevel() = %v",
				level, single.MaxLevel(),
			)
		}
	}
}

func TestFilter_MatchesUsesRecordFields(t *testing.T) {
	f := NewFilter("a=debug")

	if !f.Matches(NewRecord(LevelDebug, "a/b", "m")) {
		t.Error("record under a should pass at Debug")
	}

	if f.Matches(NewRecord(LevelTrace, "a/b", "m")) {
		t.Error("record under a should not pass at Trace")
	}
}
