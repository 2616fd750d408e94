package cmdtree

import (
	"log/slog"
	"strconv"
)

type flagDecl struct {
	token string
	dest  *int
}

// flagWrite is a parsed flag value waiting to be stored in its destination.
type flagWrite struct {
	dest  *int
	value int
}

// applyFlags stores each value in order, so a repeated flag keeps its last value.
func applyFlags(writes []flagWrite) {
	for _, w := range writes {
		*w.dest = w.value
	}
}

// extractFlags consumes "token value" pairs for the declared flags from args, starting at pos. It
// returns the position of the first unconsumed argument and the parsed values. Nothing is written to
// the destinations; see [applyFlags].
//
// Flags are only recognized as a contiguous prefix. Each declared flag, in order, is consumed for as
// long as it sits at the current position with an integer after it. When a flag token is found but
// its value is missing or not an integer, extraction stops for the command and both arguments are
// left in place as positional data.
func extractFlags(flags []flagDecl, args []string, pos int, logger *slog.Logger) (int, []flagWrite) {
	var writes []flagWrite
	for _, f := range flags {
		for pos < len(args) && args[pos] == f.token {
			if pos+1 >= len(args) {
				logger.Debug("flag has no value, leaving it as an argument", "flag", f.token)
				return pos, writes
			}
			n, err := strconv.Atoi(args[pos+1])
			if err != nil {
				logger.Debug("flag value is not an integer, leaving it as an argument",
					"flag", f.token, "value", args[pos+1])
				return pos, writes
			}
			writes = append(writes, flagWrite{dest: f.dest, value: n})
			pos += 2
		}
	}
	return pos, writes
}

func flagTokens(flags []flagDecl) []string {
	if len(flags) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(flags))
	for _, f := range flags {
		tokens = append(tokens, f.token)
	}
	return tokens
}
