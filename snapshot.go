package cmdtree

// Descriptor is a read-only mirror of a command and its children, annotated with the outcome of the
// dispatch call. It carries no behavior and is meant for rendering help, see [WriteUsage].
type Descriptor struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Flags       []string `json:"flags,omitempty" yaml:"flags,omitempty"`

	// Matched reports whether the command's name was matched (always true for a dispatched root).
	Matched bool `json:"matched" yaml:"matched"`
	// Executed reports whether the command or one of its descendants ran a handler.
	Executed bool `json:"executed" yaml:"executed"`
	// Remaining holds the arguments left after the command's name and flags, if it matched.
	Remaining []string `json:"remaining,omitempty" yaml:"remaining,omitempty"`

	Children []*Descriptor `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot mirrors c and its descendants. Taken after [Dispatch] returns, it records which commands
// matched and which subtree ran a handler. It returns nil if c is nil.
func Snapshot(c *Command) *Descriptor {
	if c == nil {
		return nil
	}
	d := &Descriptor{
		Name:        c.name,
		Description: c.description,
		Flags:       flagTokens(c.flags),
		Matched:     c.matched,
		Executed:    c.executed,
	}
	if c.matched {
		d.Remaining = c.remaining
	}
	for _, child := range c.children {
		d.Children = append(d.Children, Snapshot(child))
	}
	return d
}

// Find follows path, one child name per element, and returns the descriptor it leads to. An empty
// path returns d itself. It returns nil if any name along the path is unknown.
func (d *Descriptor) Find(path ...string) *Descriptor {
	current := d
	for _, name := range path {
		var next *Descriptor
		for _, child := range current.Children {
			if child.Name == name {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// Walk calls fn for d and each descendant, depth-first in registration order. depth is 0 for d.
func (d *Descriptor) Walk(fn func(desc *Descriptor, depth int)) {
	d.walk(fn, 0)
}

func (d *Descriptor) walk(fn func(*Descriptor, int), depth int) {
	fn(d, depth)
	for _, child := range d.Children {
		child.walk(fn, depth+1)
	}
}

// Deepest returns the deepest matched descriptor below d, following matched children. It returns
// d if no child matched.
func (d *Descriptor) Deepest() *Descriptor {
	for _, child := range d.Children {
		if child.Matched {
			return child.Deepest()
		}
	}
	return d
}
