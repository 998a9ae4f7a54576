package perrors

import (
	"fmt"
	"strings"

	"github.com/orneryd/ocypher/pkg/position"
)

// formatOffendingChar renders the tracker's "next char" slot: a
// quoted literal, a C-style escape for non-printable characters, or
// "<end of input>" when the position is EOF.
func formatOffendingChar(ch rune, hasCh bool) string {
	if !hasCh {
		return "<end of input>"
	}
	return "'" + escapeChar(ch) + "'"
}

func escapeChar(ch rune) string {
	switch ch {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case 0:
		return `\0`
	}
	if ch < 0x20 || ch == 0x7f {
		return fmt.Sprintf(`\x%02X`, ch)
	}
	return string(ch)
}

// joinLabels formats a deduplicated, first-seen-order label list as
// "L1", "L1 or L2", or "L1, L2 ... or Ln".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " or " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
	}
}

// contextWindow extracts the source line containing pos, returning that
// line and the byte offset within it pointing at pos's column, for
// editor-underline-style presentation.
func contextWindow(src *position.Source, pos position.Position) (string, int) {
	if src == nil {
		return "", 0
	}
	lineStart := pos.Offset
	for lineStart > 0 {
		b := src.Slice(position.Range{
			Start: position.Position{Offset: lineStart - 1},
			End:   position.Position{Offset: lineStart},
		})
		if len(b) == 0 || b[0] == '\n' {
			break
		}
		lineStart--
	}
	lineEnd := pos.Offset
	for {
		b := src.Slice(position.Range{
			Start: position.Position{Offset: lineEnd},
			End:   position.Position{Offset: lineEnd + 1},
		})
		if len(b) == 0 || b[0] == '\n' {
			break
		}
		lineEnd++
	}
	line := src.Slice(position.Range{
		Start: position.Position{Offset: lineStart},
		End:   position.Position{Offset: lineEnd},
	})
	return string(line), int(pos.Offset - lineStart)
}
