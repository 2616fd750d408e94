// Package cmdtree provides a small command tree dispatcher for command-line applications. A program
// declares nested commands, each with an optional handler, description and integer flags, and hands
// the process arguments to [Dispatch] or [Run]. Exactly one handler runs: the deepest command whose
// name chain matches the leading arguments, or the nearest ancestor with a handler when no child
// matches.
//
// Matching is literal and positional. The root command always discards the first argument (the
// program's own name), every other command requires the next argument to equal its name, and flags
// are recognized only as a contiguous "-flag value" prefix right after a command's name. There is no
// schema and no GNU-style flag syntax; whatever is left over is handed to the selected handler.
//
// When nothing matches, [Snapshot] mirrors the tree together with what matched, and [WriteUsage]
// renders it as an indented listing.
package cmdtree
