package cmdtree

import (
	"io"
	"log/slog"
	"os"
)

// State is handed to the selected command's handler. It lives for the duration of one dispatch
// call.
type State struct {
	// Args contains the arguments left after the command's name and flags were consumed. It shares
	// its backing array with the arguments passed to [Dispatch]; appending to it never overwrites
	// them.
	Args []string

	// Path holds the names of the matched commands, from the root down to the selected command.
	Path []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// RunOptions specifies options for dispatching a command tree.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams for the command.
	// If any of these are nil, the command will use the default streams ([os.Stdin], [os.Stdout],
	// and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug records, such as flags left in place because their value did not
	// parse. If nil, records are discarded.
	Logger *slog.Logger
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	} else {
		o := *opt
		opt = &o
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opt
}
