package cmdtree

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/mfridman/cmdtree/pkg/textutil"
)

// UsageOptions specifies options for rendering a [Descriptor] with [WriteUsage].
type UsageOptions struct {
	// Width is the maximum line width descriptions are wrapped to. Defaults to 80.
	Width int

	// Color highlights command names with ANSI escape codes. It is applied regardless of whether
	// the output is a terminal.
	Color bool
}

const (
	defaultWidth  = 80
	minWrapWidth  = 20
	columnPadding = 4
)

// WriteUsage writes an indented listing of d and its descendants to w: one line per command with
// its name, its declared flags and its description. Children are indented two spaces below their
// parent and descriptions are aligned in a single column. The options parameter may be nil.
func WriteUsage(w io.Writer, d *Descriptor, options *UsageOptions) error {
	if d == nil {
		return nil
	}
	if options == nil {
		options = &UsageOptions{}
	}
	width := options.Width
	if width <= 0 {
		width = defaultWidth
	}
	name := color.New(color.Bold)
	if options.Color {
		name.EnableColor()
	} else {
		name.DisableColor()
	}

	var rows []usageRow
	maxLen := 0
	d.Walk(func(desc *Descriptor, depth int) {
		r := usageRow{
			indent:      strings.Repeat("  ", depth),
			name:        desc.Name,
			flags:       formatFlags(desc.Flags),
			description: desc.Description,
		}
		maxLen = max(maxLen, r.width())
		rows = append(rows, r)
	})

	nameWidth := maxLen + columnPadding
	wrapWidth := max(width-nameWidth, minWrapWidth)

	var b strings.Builder
	for _, r := range rows {
		label := r.indent + name.Sprint(r.name) + r.flags
		lines := textutil.Wrap(r.description, wrapWidth)
		if len(lines) == 0 {
			b.WriteString(label + "\n")
			continue
		}
		padding := strings.Repeat(" ", nameWidth-r.width())
		fmt.Fprintf(&b, "%s%s%s\n", label, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type usageRow struct {
	indent, name, flags, description string
}

// width is the number of columns taken by the row's label, without color codes.
func (r usageRow) width() int {
	return utf8.RuneCountInString(r.indent) + utf8.RuneCountInString(r.name) + utf8.RuneCountInString(r.flags)
}

func formatFlags(tokens []string) string {
	var b strings.Builder
	for _, token := range tokens {
		fmt.Fprintf(&b, " [%s N]", token)
	}
	return b.String()
}
