package profile

// Tag is the build tag gating profiling support, reused as the default
// name of the profile output directory.
const Tag = "pprof"

// Config selects a profiling mode and output directory.
type Config struct {
	// Mode is one of the profiling modes reported by Modes. An empty mode
	// disables profiling.
	Mode string
	// Dir is the directory profile data is written to.
	Dir string
	// Quiet suppresses the profiler's own logging.
	Quiet bool
}

// Start initializes the profiler and returns an interface for stopping it.
//
// If the pprof build tag or c.Mode are unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
