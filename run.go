package cmdtree

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/cmdtree/pkg/suggest"
)

// HelpName is the name of the help command installed by [Run].
const HelpName = "help"

// Run dispatches the command tree rooted at root, like [Dispatch], and shows help when appropriate.
//
// Unless root already has a child named "help", Run installs one. Running "prog help" writes the
// listing of the whole tree to Stdout, and "prog help a b" writes the listing for the subcommand
// "a b" only.
//
// If nothing in the tree runs a handler, Run writes the listing to Stdout and returns an error with
// code [ErrNoMatch]; the caller decides the exit status. When the unmatched argument resembles a
// known subcommand, the suggestions are written to Stderr first.
//
// The options parameter may be nil, in which case default values are used. See [RunOptions] for
// more details.
func Run(ctx context.Context, root *Command, args []string, options *RunOptions) error {
	if root == nil {
		return fmt.Errorf("failed to run: root command is nil")
	}
	if root.dispatched {
		return NewError(ErrAlreadyDispatched,
			fmt.Errorf("command %q has already been dispatched", root.path()))
	}
	options = checkAndSetRunOptions(options)

	var (
		helpRequested bool
		helpPath      []string
	)
	if root.findChild(HelpName) == nil {
		help := New(HelpName).
			WithDescription("Print this listing, or the listing for a subcommand").
			WithHandler(func(ctx context.Context, s *State) error {
				helpRequested = true
				helpPath = s.Args
				return nil
			})
		if err := root.AddChild(help); err != nil {
			return err
		}
	}

	ok, err := Dispatch(ctx, root, args, options)
	if err != nil {
		return err
	}

	snapshot := Snapshot(root)
	if helpRequested {
		target := snapshot.Find(helpPath...)
		if target == nil {
			return fmt.Errorf("no such command: %q", strings.Join(helpPath, " "))
		}
		return WriteUsage(options.Stdout, target, nil)
	}
	if ok {
		return nil
	}

	writeSuggestions(options.Stderr, snapshot.Deepest())
	if err := WriteUsage(options.Stdout, snapshot, nil); err != nil {
		return err
	}
	return NewError(ErrNoMatch, fmt.Errorf("no command matched %q", args))
}

// writeSuggestions writes an "unknown command" line for the first argument left at d, along with
// similarly named children of d, if any.
func writeSuggestions(w io.Writer, d *Descriptor) {
	if len(d.Children) == 0 || len(d.Remaining) == 0 {
		return
	}
	unknown := d.Remaining[0]
	known := make([]string, 0, len(d.Children))
	for _, child := range d.Children {
		known = append(known, child.Name)
	}
	suggestions := suggest.FindSimilar(unknown, known, 3)
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "unknown command %q\n", unknown)
		return
	}
	fmt.Fprintf(w, "unknown command %q. Did you mean one of these?\n\t%s\n",
		unknown, strings.Join(suggestions, "\n\t"))
}
