package cmdtree

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// HandlerFunc is the execution logic of a command. It receives the remaining arguments, after the
// command's name and flags have been consumed, through [State.Args].
type HandlerFunc func(ctx context.Context, s *State) error

// Command is a named node in the command tree. It holds an optional handler, an optional
// description, an ordered list of integer flags and an ordered list of uniquely named children.
//
// Build a tree with [NewRoot] and [New], then hand the root to [Dispatch] or [Run]. A tree is
// single-use: it is consumed by exactly one dispatch call.
type Command struct {
	name        string
	description string
	root        bool
	handler     HandlerFunc
	flags       []flagDecl
	children    []*Command
	parent      *Command

	// Set while dispatching.
	dispatched bool
	matched    bool
	executed   bool
	remaining  []string
}

// New returns a command with no handler, no flags and no children.
func New(name string) *Command {
	return &Command{name: name}
}

// NewRoot returns a top-level command. Unlike commands created with [New], a root command consumes
// the first argument unconditionally, treating it as the program's own name.
func NewRoot(name string) *Command {
	return &Command{name: name, root: true}
}

// Name returns the command's name.
func (c *Command) Name() string { return c.name }

// Description returns the command's description, if any.
func (c *Command) Description() string { return c.description }

// IsRoot reports whether the command was created with [NewRoot].
func (c *Command) IsRoot() bool { return c.root }

// Children returns the command's children in registration order.
func (c *Command) Children() []*Command { return slices.Clone(c.children) }

// WithHandler sets the command's handler, replacing any previous one.
func (c *Command) WithHandler(fn HandlerFunc) *Command {
	c.handler = fn
	return c
}

// WithDescription sets the command's description. It is only used for help output and never
// affects matching.
func (c *Command) WithDescription(text string) *Command {
	c.description = text
	return c
}

// WithFlag declares an integer flag. When the arguments right after the command's name start with
// token followed by an integer, the integer is written to dest and both arguments are consumed.
// Flags are tried in declaration order.
//
// WithFlag panics if token is empty or dest is nil.
func (c *Command) WithFlag(token string, dest *int) *Command {
	if token == "" {
		panic(fmt.Sprintf("command %q: flag token must not be empty", c.name))
	}
	if dest == nil {
		panic(fmt.Sprintf("command %q: flag %q has a nil destination", c.name, token))
	}
	c.flags = append(c.flags, flagDecl{token: token, dest: dest})
	return c
}

// AddChild appends child to the command's children. It returns an error with code
// [ErrDuplicateName] if a child with the same name is already registered, or [ErrInvalidChild] if
// child is nil, already attached to another command, or an ancestor of c.
func (c *Command) AddChild(child *Command) error {
	if child == nil {
		return NewError(ErrInvalidChild, fmt.Errorf("command %q: child is nil", c.name))
	}
	if child.parent != nil {
		return NewError(ErrInvalidChild, fmt.Errorf("command %q: child %q is already attached to %q",
			c.name, child.name, child.parent.name))
	}
	for p := c; p != nil; p = p.parent {
		if p == child {
			return NewError(ErrInvalidChild, fmt.Errorf("command %q: child %q is an ancestor",
				c.name, child.name))
		}
	}
	if c.findChild(child.name) != nil {
		return NewError(ErrDuplicateName, fmt.Errorf("command %q already has a subcommand named %q",
			c.path(), child.name))
	}
	child.parent = c
	c.children = append(c.children, child)
	return nil
}

// MustAddChild is like [Command.AddChild] for each of children but panics on error. It returns c so
// calls can be chained while building a tree.
func (c *Command) MustAddChild(children ...*Command) *Command {
	for _, child := range children {
		if err := c.AddChild(child); err != nil {
			panic(err)
		}
	}
	return c
}

// findChild searches for a child by its exact name and returns it if found.
func (c *Command) findChild(name string) *Command {
	for _, child := range c.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// path returns the space separated names from the top of the tree down to c.
func (c *Command) path() string {
	var names []string
	for p := c; p != nil; p = p.parent {
		names = append(names, p.name)
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}
