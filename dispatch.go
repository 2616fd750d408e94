package cmdtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Dispatch walks the command tree rooted at c against args and runs exactly one handler. It reports
// whether a handler ran; when it did, the handler's error is returned as-is.
//
// args is typically the full os.Args, including the program name at index 0: a root command
// (see [NewRoot]) discards the first argument without looking at it. Do not strip it beforehand,
// or the root will discard the first real argument instead. A non-root command requires the first
// argument to equal its name.
//
// After the name, the command's flags are consumed, then each child is tried in registration
// order. The first child that runs a handler wins and no ancestor handler runs. If no child matches,
// the command's own handler, if any, runs with the remaining arguments.
//
// A tree can be dispatched only once. Calling Dispatch again returns an error with code
// [ErrAlreadyDispatched]. When Dispatch returns false with a nil error, use [Snapshot] and
// [WriteUsage] to show what is available.
func Dispatch(ctx context.Context, c *Command, args []string, options *RunOptions) (bool, error) {
	if c == nil {
		return false, errors.New("failed to dispatch: command is nil")
	}
	if c.dispatched {
		return false, NewError(ErrAlreadyDispatched,
			fmt.Errorf("command %q has already been dispatched", c.path()))
	}
	markDispatched(c)
	options = checkAndSetRunOptions(options)

	d := &dispatcher{
		args:    args,
		options: options,
		logger:  options.Logger,
	}
	ok, err := d.dispatch(ctx, c, 0, nil, nil)
	if !ok {
		d.logger.Debug("no command matched", "args", args)
	}
	return ok, err
}

func markDispatched(c *Command) {
	c.dispatched = true
	for _, child := range c.children {
		markDispatched(child)
	}
}

type dispatcher struct {
	args    []string
	options *RunOptions
	logger  *slog.Logger
}

// dispatch tries to match c at position pos of the arguments. path holds the names of the matched
// ancestors and pending their parsed flag values. Flag values are only stored once a handler is
// about to run, so a subtree that runs nothing leaves every destination untouched.
func (d *dispatcher) dispatch(
	ctx context.Context,
	c *Command,
	pos int,
	path []string,
	pending []flagWrite,
) (bool, error) {
	if c.root {
		if pos < len(d.args) {
			pos++
		}
	} else {
		if pos >= len(d.args) || d.args[pos] != c.name {
			return false, nil
		}
		pos++
	}
	c.matched = true
	path = append(slices.Clip(path), c.name)

	pos, writes := extractFlags(c.flags, d.args, pos, d.logger)
	pending = append(slices.Clip(pending), writes...)
	c.remaining = d.args[pos:len(d.args):len(d.args)]

	for _, child := range c.children {
		ok, err := d.dispatch(ctx, child, pos, path, pending)
		if ok {
			c.executed = true
			return true, err
		}
	}
	if c.handler == nil {
		return false, nil
	}

	applyFlags(pending)
	c.executed = true
	d.logger.Debug("running command", "command", strings.Join(path, " "), "args", c.remaining)
	return true, c.handler(ctx, &State{
		Args:   c.remaining,
		Path:   path,
		Stdin:  d.options.Stdin,
		Stdout: d.options.Stdout,
		Stderr: d.options.Stderr,
	})
}
