// Package log routes structured records into a host console through a
// directive-based severity filter.
//
// The package formats each record as a timestamped line and dispatches it
// to one of four severity-keyed console channels. Filtering, rendering,
// and dispatch are configured at construction time using functional
// options.
//
// # Basic Usage
//
// Install the process-wide sink from a filter directive spec:
//
//	err := log.Init("info")
//	log.Info("server", "application started")
//	log.Error("server/db", "failed to connect")
//
// Or from a single severity level, or an environment variable:
//
//	err := log.InitLevel(log.LevelDebug)
//	err := log.InitEnv(log.OSEnv{}, "LOG")
//
// InitEnv fails when the variable cannot be resolved; nothing is installed
// in that case. All initializers fail with pkg.ErrAlreadyInstalled once a
// sink is installed, and the first-installed sink stays active for the life
// of the process.
//
// # Filter Directives
//
// A filter spec is a comma-separated list of directives of the form
// [target=]level:
//
//	info                  global Info threshold
//	server=debug          Debug for targets under "server"
//	server=debug,off      later directives win: everything disabled
//	a=info,a/b=error      Error for "a/b...", Info for other "a..."
//
// Directives are matched by target prefix, and the last declared applicable
// directive wins. Malformed directives are dropped so a configuration typo
// degrades verbosity instead of failing the host.
//
// # Direct Construction
//
// Loggers can also be constructed and used without installation:
//
//	logger := log.New("server=trace",
//		log.WithColor(true),
//		log.WithTimeLayout("RFC3339Nano"))
//	logger.Trace("server", "request received")
//
// # Output
//
// Records render as
//
//	[{timestamp} {LEVEL} {target}] {message}
//
// where the target is the record's source location as "file:line" when
// available. Error and Warn records dispatch to the console's error and
// warning channels, Debug records to the debug channel, and Info and Trace
// records to the general channel.
//
// # Structured Logging
//
// The slog bridge lets the installed sink serve the standard structured
// logging ecosystem:
//
//	slogger := log.Default().Slog()
//	slogger.Info("request received", "target", "server/http", "ms", 42)
package log
