package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/conlog/conlog/log"
)

// Check reports whether a record for the given target and severity would
// pass the installed filter.
type Check struct {
	Target string `arg:""          help:"Record target to test."`
	Level  string `default:"info"  enum:"error,warn,info,debug,trace" help:"Record severity to test." short:"l"`
}

// Run implements the check command.
func (c *Check) Run(ktx *kong.Context) error {
	_, err := fmt.Fprintln(ktx.Stdout, c.verdict(log.Default()))

	return err
}

// verdict reports whether sink would admit the command's target and
// severity.
func (c *Check) verdict(sink log.Logger) string {
	level, _ := log.ParseLevel(c.Level)

	if sink.Enabled(c.Target, level) {
		return "enabled"
	}

	return "disabled"
}
