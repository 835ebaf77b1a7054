package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/conlog/conlog/pkg"
)

// CLI is the top-level command-line interface for conlog.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag defaults from this YAML file." placeholder:"PATH"`

	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Emit  Emit  `cmd:"" default:"withargs" help:"Emit records through the installed sink"`
	Check Check `cmd:"" help:"Test whether a target and severity pass the filter"`
}

// Run executes the conlog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Configuration(loadConfig, configPath()),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Install the process sink before any command runs. A conflict means a
	// sink already exists for this process, which is fatal only to the CLI:
	// it has no way to apply the requested configuration.
	if err := cli.Log.start(ctx); err != nil {
		return err
	}

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
