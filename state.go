package xmlscan

import (
	"github.com/go-xmlscan/xmlscan/internal/charclass"
	"github.com/go-xmlscan/xmlscan/internal/charsource"
	"github.com/go-xmlscan/xmlscan/internal/scratch"
	"github.com/go-xmlscan/xmlscan/sax"
)

// state is the parser engine, generic over the handler it drives and
// the two compile-time flags that pick its SIMD and tag-matching
// behaviour. Instantiating state[H, Sm, Tc] for a concrete (Sm, Tc)
// pair gives the compiler a dedicated copy of every method with that
// combination's branches resolved at compile time; see runWith.
type state[H sax.Handler, Sm Flag, Tc Flag] struct {
	src charsource.Source
	h   H
	buf *scratch.Buffer
	pos cursor

	// pending holds code units read ahead of the position cursor by
	// peek/peekAt, so that callers can look more than one code unit
	// ahead on top of a Source that only offers lane-width preview or
	// single-unit consuming reads. pending[0] is always the next code
	// unit read will return.
	pending []uint16

	// laneWidth caps which lane widths tryLane8/tryLane16 will use,
	// picked once per parse from the running CPU's vector width so a
	// machine with no AVX2 never pays for a 16-wide preview it can't
	// execute efficiently.
	laneWidth int
}

func newState[H sax.Handler, Sm Flag, Tc Flag](src charsource.Source, h H) *state[H, Sm, Tc] {
	return &state[H, Sm, Tc]{src: src, h: h, buf: scratch.New(), laneWidth: charclass.PreferredLaneWidth()}
}

func (s *state[H, Sm, Tc]) release() {
	s.buf.Release()
}

// fill ensures at least n code units are buffered in s.pending,
// reading ahead from the source as needed. It reports false if the
// source ran out before n were available.
func (s *state[H, Sm, Tc]) fill(n int) bool {
	for len(s.pending) < n {
		c, ok := s.src.TryReadNext()
		if !ok {
			return false
		}
		s.pending = append(s.pending, c)
	}
	return true
}

// peek returns the next code unit without consuming it.
func (s *state[H, Sm, Tc]) peek() (uint16, bool) {
	if !s.fill(1) {
		return 0, false
	}
	return s.pending[0], true
}

// peekAt returns the code unit i positions ahead of the next one
// (peekAt(0) is equivalent to peek), without consuming anything.
func (s *state[H, Sm, Tc]) peekAt(i int) (uint16, bool) {
	if !s.fill(i + 1) {
		return 0, false
	}
	return s.pending[i], true
}

// read consumes and returns the next code unit, advancing position.
func (s *state[H, Sm, Tc]) read() (uint16, bool) {
	c, ok := s.peek()
	if !ok {
		return 0, false
	}
	s.pending = s.pending[1:]
	s.pos.advance(c)
	return c, true
}

// tryLane8/tryLane16 expose the source's lane preview, but only when
// nothing is already buffered in s.pending: a lane read while pending
// holds units would skip over them, since the lane comes from the
// source's own cursor, which already sits ahead of what peek/read
// have exposed.
func (s *state[H, Sm, Tc]) tryLane8() ([8]uint16, bool) {
	if len(s.pending) > 0 || s.laneWidth < charclass.LaneWidth8 {
		return [8]uint16{}, false
	}
	return s.src.TryPreviewLane8()
}

func (s *state[H, Sm, Tc]) tryLane16() ([16]uint16, bool) {
	if len(s.pending) > 0 || s.laneWidth < charclass.LaneWidth16 {
		return [16]uint16{}, false
	}
	return s.src.TryPreviewLane16()
}

func (s *state[H, Sm, Tc]) advanceLane(units []uint16) {
	s.src.Advance(len(units))
	for _, u := range units {
		s.pos.advance(u)
	}
}

func (s *state[H, Sm, Tc]) errorf(kind ErrorKind) error {
	line, col := s.pos.position()
	return s.h.OnError(newParseError(kind, line, col).Error(), line, col)
}

func (s *state[H, Sm, Tc]) errorAt(kind ErrorKind, line, col int) error {
	return s.h.OnError(newParseError(kind, line, col).Error(), line, col)
}
