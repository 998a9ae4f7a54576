package position

import (
	"bufio"
	"io"
)

// Mark is an opaque cursor snapshot returned by Source.Mark, later
// passed to Source.Restore to backtrack or discarded to commit.
type Mark struct {
	index int
	pos   Position
}

// Pos returns the position the Mark snapshotted.
func (m Mark) Pos() Position { return m.pos }

// Source streams bytes from either an in-memory buffer or a chunked
// io.Reader, buffering everything it has read so far so that the
// grammar engine can mark a position and later restore to it. The
// buffer only ever grows; nothing is evicted.
type Source struct {
	buf        []byte
	r          *bufio.Reader
	eof        bool
	index      int // byte offset into buf of the next unread byte
	pos        Position
	baseOffset uint64 // Position.Offset of buf[0]
}

// NewFromBytes creates a Source over an in-memory slice. initial
// configures the position reported for the first byte, for embedding
// into a larger document.
func NewFromBytes(b []byte, initial Position) *Source {
	return &Source{
		buf:        b,
		eof:        true,
		pos:        initial,
		baseOffset: initial.Offset,
	}
}

// NewFromReader creates a Source that pulls chunks from r on demand.
func NewFromReader(r io.Reader, initial Position) *Source {
	return &Source{
		r:          bufio.NewReader(r),
		pos:        initial,
		baseOffset: initial.Offset,
	}
}

// fill attempts to read more bytes into buf. Returns false at EOF.
func (s *Source) fill() bool {
	if s.eof || s.r == nil {
		return false
	}
	chunk := make([]byte, 4096)
	n, err := s.r.Read(chunk)
	if n > 0 {
		s.buf = append(s.buf, chunk[:n]...)
	}
	if err != nil {
		s.eof = true
	}
	return n > 0
}

// ensure makes sure at least n bytes are available from the current
// index, pulling from the reader if necessary.
func (s *Source) ensure(n int) bool {
	for s.index+n > len(s.buf) {
		if !s.fill() {
			return s.index+n <= len(s.buf)
		}
	}
	return true
}

// Pos returns the position of the next unread byte.
func (s *Source) Pos() Position { return s.pos }

// AtEOF reports whether the source has been fully consumed.
func (s *Source) AtEOF() bool {
	return !s.ensure(1)
}

// PeekAt returns the byte `ahead` positions past the cursor without
// consuming, and whether it exists.
func (s *Source) PeekAt(ahead int) (byte, bool) {
	if !s.ensure(ahead + 1) {
		return 0, false
	}
	return s.buf[s.index+ahead], true
}

// Peek returns the next unread byte without consuming it.
func (s *Source) Peek() (byte, bool) { return s.PeekAt(0) }

// Advance consumes and returns the next byte.
func (s *Source) Advance() (byte, bool) {
	b, ok := s.Peek()
	if !ok {
		return 0, false
	}
	s.index++
	s.pos = s.pos.Advance(b)
	return b, true
}

// Mark snapshots the current cursor for later restore or commit.
func (s *Source) Mark() Mark { return Mark{index: s.index, pos: s.pos} }

// Restore rewinds the cursor to a previously taken Mark.
func (s *Source) Restore(m Mark) {
	s.index = m.index
	s.pos = m.pos
}

// Commit discards a Mark without rewinding; it exists for symmetry
// with Mark/Restore at call sites that branch on success.
func (s *Source) Commit(Mark) {}

// Slice returns the raw bytes covered by r. r.Start/r.End are absolute
// Offsets already shifted by the configured initial position.
func (s *Source) Slice(r Range) []byte {
	start := int(r.Start.Offset - s.baseOffset)
	end := int(r.End.Offset - s.baseOffset)
	if start < 0 {
		start = 0
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if start > end || start > len(s.buf) {
		return nil
	}
	return s.buf[start:end]
}

// RangeFrom builds a Range from a Mark's position to the current
// position.
func (s *Source) RangeFrom(m Mark) Range {
	return Range{Start: m.pos, End: s.pos}
}
