package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/conlog/conlog/log"
	"github.com/conlog/conlog/pkg"
)

// Emit sends records through the installed sink: its arguments joined as
// one message, or one record per line of standard input when no message is
// given.
type Emit struct {
	Target  string   `default:"cli"  help:"Record target (module path or tag)."                       short:"t"`
	Level   string   `default:"info" enum:"error,warn,info,debug,trace" help:"Record severity."       short:"l"`
	Message []string `arg:""         optional:""                        help:"Message text; read from stdin when omitted."`
}

// Run implements the emit command.
func (e *Emit) Run() error {
	return e.emit(log.Default(), os.Stdin)
}

// emit writes the command's records to sink, reading stdin for message
// lines when no message arguments were given.
func (e *Emit) emit(sink log.Logger, stdin io.Reader) error {
	level, _ := log.ParseLevel(e.Level)

	if len(e.Message) > 0 {
		sink.Log(log.NewRecord(level, e.Target, strings.Join(e.Message, " ")))

		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		sink.Log(log.NewRecord(level, e.Target, scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return pkg.MakeError(pkg.ErrReadStdin).Wrap(err)
	}

	return nil
}
