// Package goals implements the per-user goal store: `done;text` records with
// text-keyed merge-import.
package goals

import (
	"fmt"
	"strings"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
)

// Goal is one record of a goal file. The canonical line order is `done;text`;
// text may itself contain the delimiter, so lines split at the first `;` only.
type Goal struct {
	Done bool
	Text string
}

func parseLine(line string) (Goal, error) {
	parts := strings.SplitN(line, csvx.Delimiter, 2)
	if len(parts) != 2 {
		return Goal{}, fmt.Errorf("%w: %q", common.ErrMalformedRecord, line)
	}

	var done bool
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "true":
		done = true
	case "false":
		done = false
	default:
		return Goal{}, fmt.Errorf("%w: bad done flag in %q", common.ErrMalformedRecord, line)
	}

	return Goal{Done: done, Text: strings.TrimSpace(parts[1])}, nil
}

func formatLine(g Goal) string {
	return fmt.Sprintf("%t%s%s", g.Done, csvx.Delimiter, g.Text)
}
