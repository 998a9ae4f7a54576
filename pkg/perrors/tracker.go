// Package perrors implements the error-tracking subsystem:
// an append-only log of potential-error hypotheses noted by failed
// grammar alternatives, reified at recovery points into deduplicated
// "expected X, Y or Z" diagnostics.
package perrors

import "github.com/orneryd/ocypher/pkg/position"

type potential struct {
	pos   position.Position
	next  rune
	hasCh bool
	label string
}

// Tracker accumulates potential errors during a single top-level parse
// attempt. It is not safe for concurrent use; callers own one Tracker
// per parse.
type Tracker struct {
	colors     ColorScheme
	potentials []potential
	furthest   position.Position
}

// New constructs an empty Tracker using the given colorization scheme
// for rendered ParseError context windows.
func New(colors ColorScheme) *Tracker {
	return &Tracker{colors: colors}
}

// Reset clears tracker state so it can be reused for the next
// top-level parse attempt.
func (t *Tracker) Reset() {
	t.potentials = t.potentials[:0]
	t.furthest = position.Position{}
}

// NotePotential records a failed alternative's expected-label at pos.
// next is the offending character at pos, if any (hasNext false at
// end-of-input). Potentials at positions strictly before the current
// furthest position noted so far are still kept — discarding happens
// explicitly via Commit.
func (t *Tracker) NotePotential(pos position.Position, next rune, hasNext bool, label string) {
	if pos.Offset > t.furthest.Offset {
		t.furthest = pos
	}
	t.potentials = append(t.potentials, potential{pos: pos, next: next, hasCh: hasNext, label: label})
}

// Commit discards every potential noted at a position strictly before
// pos, reflecting that the grammar has consumed past a decision point
// and those earlier hypotheses can no longer be the furthest failure.
func (t *Tracker) Commit(pos position.Position) {
	kept := t.potentials[:0]
	for _, p := range t.potentials {
		if p.pos.Offset >= pos.Offset {
			kept = append(kept, p)
		}
	}
	t.potentials = kept
}

// Furthest returns the furthest position any potential has been noted
// at so far.
func (t *Tracker) Furthest() position.Position { return t.furthest }

// Colors returns the tracker's configured color scheme, for formatting
// reified errors with ParseError.Format.
func (t *Tracker) Colors() ColorScheme { return t.colors }

// HasPotentials reports whether any potential errors are pending.
func (t *Tracker) HasPotentials() bool { return len(t.potentials) > 0 }

// ReifyExpected collapses every potential at the furthest position into
// one deduplicated "expected ..." ParseError, given the full source for
// context-window rendering. It returns nil if no potentials are
// pending.
func (t *Tracker) ReifyExpected(src *position.Source) *ParseError {
	if len(t.potentials) == 0 {
		return nil
	}
	var labels []string
	seen := make(map[string]bool)
	var ch rune
	hasCh := false
	for _, p := range t.potentials {
		if p.pos.Offset != t.furthest.Offset {
			continue
		}
		if !seen[p.label] {
			seen[p.label] = true
			labels = append(labels, p.label)
		}
		ch, hasCh = p.next, p.hasCh
	}
	if len(labels) == 0 {
		return nil
	}
	msg := "Invalid input " + formatOffendingChar(ch, hasCh) + ": expected " + joinLabels(labels)
	ctx, off := contextWindow(src, t.furthest)
	return &ParseError{pos: t.furthest, msg: msg, context: ctx, contextOffset: off}
}
