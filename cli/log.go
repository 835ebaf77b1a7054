package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/conlog/conlog/log"
)

// logConfig configures the process-wide sink from command-line flags.
type logConfig struct {
	Filter     string `help:"Filter directives as 'target=level,...'."                placeholder:"SPEC" xor:"source"`
	Env        string `help:"Read filter directives from this environment variable." placeholder:"NAME" xor:"source"`
	Level      string `default:"info"    enum:"error,warn,info,debug,trace" help:"Global severity threshold when no directives are given."`
	Color      bool   `default:"false"                                      help:"Colorize level tokens."                                  negatable:""`
	TimeLayout string `default:"RFC3339"                                    help:"Set timestamp format."`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// build constructs the sink from the parsed flags. Exactly one filter
// source applies: --log-env, then --log-filter, then --log-level.
func (f *logConfig) build() (log.Logger, error) {
	opts := []log.Option{
		log.WithColor(f.Color),
		log.WithTimeLayout(f.TimeLayout),
	}

	switch {
	case f.Env != "":
		return log.NewEnv(log.OSEnv{}, f.Env, opts...)

	case f.Filter != "":
		return log.New(f.Filter, opts...), nil

	default:
		level, _ := log.ParseLevel(f.Level)

		return log.NewLevel(level, opts...), nil
	}
}

// start builds and installs the process sink from the parsed flags.
func (f *logConfig) start(context.Context) error {
	sink, err := f.build()
	if err != nil {
		return err
	}

	return sink.Install()
}
