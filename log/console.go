package log

import (
	"fmt"
	"io"
	"os"
)

// Console is the host console collaborator: four severity-keyed write entry
// points, each accepting one preformatted line. Writes are fire and forget;
// implementations report neither delivery nor failure.
type Console interface {
	// Error writes a line to the error channel.
	Error(line string)
	// Warn writes a line to the warning channel.
	Warn(line string)
	// Debug writes a line to the debug channel.
	Debug(line string)
	// Log writes a line to the general channel, which carries Info and
	// Trace records.
	Log(line string)
}

// Stdio is a Console backed by the standard file descriptors: Error and
// Warn write to Err, Debug and Log to Out. Write errors are ignored.
// The zero value writes to os.Stderr and os.Stdout.
type Stdio struct {
	Out io.Writer
	Err io.Writer
}

// Error implements Console.
func (c Stdio) Error(line string) { write(c.errWriter(), line) }

// Warn implements Console.
func (c Stdio) Warn(line string) { write(c.errWriter(), line) }

// Debug implements Console.
func (c Stdio) Debug(line string) { write(c.outWriter(), line) }

// Log implements Console.
func (c Stdio) Log(line string) { write(c.outWriter(), line) }

func (c Stdio) outWriter() io.Writer {
	if c.Out != nil {
		return c.Out
	}

	return os.Stdout
}

func (c Stdio) errWriter() io.Writer {
	if c.Err != nil {
		return c.Err
	}

	return os.Stderr
}

func write(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
