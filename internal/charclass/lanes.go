package charclass

import "github.com/klauspost/cpuid/v2"

// LaneWidth8 and LaneWidth16 are the two lane widths the character
// source is asked to preview.
const (
	LaneWidth8  = 8
	LaneWidth16 = 16
)

// PreferredLaneWidth picks the widest lane the running CPU can chew
// through efficiently. It is a heuristic, not a hard requirement: the
// lane predicates below are plain unrolled-friendly Go loops that
// produce identical results at any width. Without AVX2 it picks the
// 8-wide lane; with neither AVX2 nor SSE2 it returns 0, which leaves
// only the scalar path, still correct but not bulk-amortized. This
// mirrors how
// github.com/klauspost/cpuid/v2 is used elsewhere in the ecosystem to
// size a decoder's bulk-copy window (e.g. HBTGmbH/gosaxml's decoder).
func PreferredLaneWidth() int {
	switch {
	case cpuid.CPU.Has(cpuid.AVX2):
		return LaneWidth16
	case cpuid.CPU.Has(cpuid.SSE2):
		return LaneWidth8
	default:
		return 0
	}
}

// ContentLaneOK reports whether every code unit in lane is safe for
// the top-level dispatch loop's bulk content fast path: printable,
// not a potential surrogate, and not '&', '<', or ']' (']' is
// excluded so the scalar loop that takes over at a lane boundary can
// check for a literal "]]>" one code unit at a time, the one piece of
// the CharData grammar a per-unit lane predicate can't express).
func ContentLaneOK(lane []uint16) bool {
	for _, c := range lane {
		if c < ' ' || c >= HighSurrogateStart || c == '&' || c == '<' || c == ']' {
			return false
		}
	}
	return true
}

// AttrValueLaneOK reports whether every code unit in lane is safe for
// the attribute-value fast path: no quote, '&', '<', control
// character, or potential surrogate.
func AttrValueLaneOK(lane []uint16, quote uint16) bool {
	for _, c := range lane {
		if c == quote || c == '&' || c == '<' || c < ' ' || c >= HighSurrogateStart {
			return false
		}
	}
	return true
}

// CommentLaneOK reports whether every code unit in lane is safe for
// the comment-body fast path: no '-', control character, or
// potential surrogate.
func CommentLaneOK(lane []uint16) bool {
	for _, c := range lane {
		if c == '-' || c < ' ' || c >= HighSurrogateStart {
			return false
		}
	}
	return true
}

// CDataLaneOK reports whether every code unit in lane is safe for the
// CDATA-body fast path: no ']', control character, or potential
// surrogate.
func CDataLaneOK(lane []uint16) bool {
	for _, c := range lane {
		if c == ']' || c < ' ' || c >= HighSurrogateStart {
			return false
		}
	}
	return true
}

// NameLaneOK reports whether every code unit in lane belongs to the
// fast ASCII name subset [A-Za-z0-9:_.-].
func NameLaneOK(lane []uint16) bool {
	for _, c := range lane {
		if !IsCommonNameChar(c) {
			return false
		}
	}
	return true
}
