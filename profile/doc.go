// Package profile wraps github.com/pkg/profile behind the pprof build tag.
//
// Profiling support is compiled in only when building with:
//
//	go build -tags pprof
//
// Without the tag, [Config.Start] is a no-op and the package adds nothing
// to the binary. With the tag, the CLI exposes the supported modes through
// its --pprof-mode flag and writes profile data beneath the user cache
// directory by default.
package profile
