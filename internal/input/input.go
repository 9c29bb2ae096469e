package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dadrus/bestmatch/internal/bestmatch"
	"github.com/dadrus/bestmatch/internal/x/errorchain"
)

const maxLineLength = 1024 * 1024

// Input holds the patterns and paths read from a match request.
type Input struct {
	Patterns []string
	Paths    []string
}

// Parse reads the line based input format. The first line holds the number
// of patterns N, followed by N pattern lines. The next line announces the
// number of paths and is not relied on. Every remaining line is a path.
// All lines are trimmed of surrounding whitespace.
func Parse(reader io.Reader) (Input, error) {
	var (
		result        Input
		expected      int
		lineNo        int
		pathCountSeen bool
	)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++

		switch {
		case lineNo == 1:
			count, err := strconv.Atoi(line)
			if err != nil || count < 0 {
				return Input{}, errorchain.NewWithMessagef(bestmatch.ErrArgument,
					"invalid pattern count %q in line 1", line)
			}

			expected = count
			result.Patterns = make([]string, 0, count)
		case len(result.Patterns) < expected:
			result.Patterns = append(result.Patterns, line)
		case !pathCountSeen:
			pathCountSeen = true
		default:
			result.Paths = append(result.Paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return Input{}, errorchain.NewWithMessage(bestmatch.ErrArgument,
			"failed reading input").CausedBy(err)
	}

	if lineNo == 0 {
		return Input{}, errorchain.NewWithMessage(bestmatch.ErrArgument, "empty input")
	}

	if len(result.Patterns) < expected {
		return Input{}, errorchain.NewWithMessagef(bestmatch.ErrArgument,
			"expected %d patterns, got %d", expected, len(result.Patterns))
	}

	return result, nil
}
