package xmlscan

import "github.com/go-xmlscan/xmlscan/internal/charclass"

// appendRun appends code units matching scalarPred into the scratch
// buffer until one doesn't match or the source ends, taking
// whole-lane strides through laneOK when SIMD is enabled and a full,
// all-matching lane is available. laneOK is typically a stricter,
// faster check than scalarPred (e.g. it rejects the one code unit
// that needs multi-unit lookahead to classify); the scalar loop it
// falls back to is always the one that decides correctness. It never
// consumes the first non-matching unit.
func (s *state[H, Sm, Tc]) appendRun(scalarPred func(uint16) bool, laneOK func([]uint16) bool) {
	var sm Sm
	for {
		if sm.enabled() {
			if lane, ok := s.tryLane16(); ok && laneOK(lane[:]) {
				s.buf.AppendLane(lane[:])
				s.advanceLane(lane[:])
				continue
			}
			if lane, ok := s.tryLane8(); ok && laneOK(lane[:]) {
				s.buf.AppendLane(lane[:])
				s.advanceLane(lane[:])
				continue
			}
		}
		c, ok := s.peek()
		if !ok || !scalarPred(c) {
			return
		}
		s.read()
		s.buf.AppendCodeUnit(c)
	}
}

// skipRun is appendRun without keeping the matched units, used for
// whitespace the grammar discards (e.g. between attributes). It
// reports whether it consumed at least one code unit, which callers
// that sit where the grammar requires whitespace (rather than merely
// allowing it) need in order to tell "whitespace, then more input"
// apart from "no whitespace, straight into more input".
func (s *state[H, Sm, Tc]) skipRun(scalarPred func(uint16) bool, laneOK func([]uint16) bool) bool {
	var sm Sm
	consumed := false
	for {
		if sm.enabled() {
			if lane, ok := s.tryLane16(); ok && laneOK(lane[:]) {
				s.advanceLane(lane[:])
				consumed = true
				continue
			}
			if lane, ok := s.tryLane8(); ok && laneOK(lane[:]) {
				s.advanceLane(lane[:])
				consumed = true
				continue
			}
		}
		c, ok := s.peek()
		if !ok || !scalarPred(c) {
			return consumed
		}
		s.read()
		consumed = true
	}
}

// consumeNewline folds a line break onto the single #xA character XML
// 1.0 requires: it consumes a lone '\r', a lone '\n', or the '\r' '\n'
// pair, and appends exactly one '\n' to the scratch buffer in every
// case. The cursor must be sitting on '\r' or '\n' when this is called.
func (s *state[H, Sm, Tc]) consumeNewline() {
	c, _ := s.read()
	if c == '\r' {
		if c2, ok := s.peek(); ok && c2 == '\n' {
			s.read()
		}
	}
	s.buf.AppendCodeUnit('\n')
}

// appendExtendedRun is appendRun plus non-BMP support: laneOK and
// scalarPred only ever see BMP code units, since a surrogate half
// never satisfies an XML character-class predicate on its own. When a
// run stops at a high surrogate, this combines it with the following
// low surrogate, validates the resulting code point with
// codePointPred, and if it passes, appends the pair and resumes
// scanning; otherwise it stops without consuming the surrogate pair.
func (s *state[H, Sm, Tc]) appendExtendedRun(scalarPred func(uint16) bool, laneOK func([]uint16) bool, codePointPred func(rune) bool) {
	for {
		s.appendRun(scalarPred, laneOK)
		high, ok := s.peek()
		if !ok || !charclass.IsHighSurrogate(high) {
			return
		}
		low, ok := s.peekAt(1)
		if !ok || !charclass.IsLowSurrogate(low) {
			return
		}
		if !codePointPred(charclass.CombineSurrogates(high, low)) {
			return
		}
		s.read()
		s.read()
		s.buf.AppendCodeUnit(high)
		s.buf.AppendCodeUnit(low)
	}
}
