// Package cli contains the command line interface for conlog.
//
// # Usage
//
// The CLI installs the process-wide sink from its logging flags, then runs
// the selected command:
//
//	conlog --log-filter='server=debug,info' emit --target=server/http "hello"
//	conlog --log-env=LOG check server/http --level=debug
//
// # Logging Options
//
// The sink is configured from exactly one source, in order of precedence:
//   - --log-env: filter directives read from an environment variable
//   - --log-filter: filter directives given inline
//   - --log-level: a single global severity threshold
//
// --log-color and --log-time-layout adjust rendering for any source.
//
// # Configuration File
//
// Flag defaults can be supplied by a YAML mapping at the user configuration
// directory (for example ~/.config/conlog/config.yaml):
//
//	log-filter: "server=debug,info"
//	log-color: true
//	log-time-layout: RFC3339Nano
//
// Keys may use hyphens or underscores. Command-line flags override config
// file values, and a malformed file degrades to built-in defaults.
//
// # Profiling
//
// When built with the pprof tag, the --pprof-mode and --pprof-dir flags
// enable profiling around command execution.
package cli
