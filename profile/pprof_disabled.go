//go:build !pprof

package profile

// Modes returns no profiling modes when built without the pprof build tag.
var Modes = func() []string { return nil }

// start is a no-op when built without the pprof build tag.
func start(Config) interface{ Stop() } { return ignore{} }
