// Package scratch implements the parser's single growable scratch
// buffer: one contiguous []uint16 arena holding both the serialized
// open-tag-name stack and the lexeme currently being assembled,
// separated by a moving split point.
package scratch

import "github.com/go-xmlscan/xmlscan/internal/pool"

var bufferPool = pool.Uint16Slice()

// Buffer is one parser's scratch arena. The zero value is not usable;
// construct with New.
type Buffer struct {
	data         []uint16
	length       int // write cursor: end of all accumulated data
	nameStackEnd int // split point: [0, nameStackEnd) is the open-tag stack
}

// New acquires a Buffer from the shared pool.
func New() *Buffer {
	return &Buffer{data: bufferPool.Get()}
}

// Release returns the Buffer's storage to the shared pool. The
// Buffer must not be used afterwards.
func (b *Buffer) Release() {
	bufferPool.Put(b.data)
	b.data = nil
	b.length = 0
	b.nameStackEnd = 0
}

// Reset clears both regions, as if the Buffer had just been
// acquired, without returning storage to the pool.
func (b *Buffer) Reset() {
	b.length = 0
	b.nameStackEnd = 0
}

func (b *Buffer) ensure(extra int) {
	need := b.length + extra
	if need <= cap(b.data) {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = 128
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]uint16, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// AppendCodeUnit appends one code unit to the lexeme region.
func (b *Buffer) AppendCodeUnit(c uint16) {
	b.ensure(1)
	b.data = b.data[:b.length+1]
	b.data[b.length] = c
	b.length++
}

// AppendLane appends an entire preview lane to the lexeme region in
// one bulk copy, as used by the vectorised content/name fast paths.
func (b *Buffer) AppendLane(lane []uint16) {
	b.ensure(len(lane))
	b.data = b.data[:b.length+len(lane)]
	copy(b.data[b.length:], lane)
	b.length += len(lane)
}

func (b *Buffer) appendInt32(n int) {
	b.ensure(2)
	b.data = b.data[:b.length+2]
	b.data[b.length] = uint16(uint32(n))
	b.data[b.length+1] = uint16(uint32(n) >> 16)
	b.length += 2
}

func (b *Buffer) readInt32(pos int) int {
	return int(uint32(b.data[pos]) | uint32(b.data[pos+1])<<16)
}

// Mark returns the current write cursor, for callers that need to
// delimit a later sub-slice (e.g. the attribute name's start before
// the value is parsed).
func (b *Buffer) Mark() int { return b.length }

// Len returns the current write cursor.
func (b *Buffer) Len() int { return b.length }

// SplitPoint returns the current stack/lexeme split point.
func (b *Buffer) SplitPoint() int { return b.nameStackEnd }

// Lexeme returns the borrowed slice [splitPoint, length): the lexeme
// currently being assembled.
func (b *Buffer) Lexeme() []uint16 {
	return b.data[b.nameStackEnd:b.length]
}

// Slice returns the borrowed slice [index, length) for a caller-saved
// index obtained from an earlier Mark call.
func (b *Buffer) Slice(index int) []uint16 {
	return b.data[index:b.length]
}

// Range returns the borrowed slice [from, to) for two caller-saved
// indices.
func (b *Buffer) Range(from, to int) []uint16 {
	return b.data[from:to]
}

// ClearLexeme resets the write cursor to the split point, discarding
// the lexeme currently being assembled (and, transitively, anything
// a prior PopName left above the new split point).
func (b *Buffer) ClearLexeme() {
	b.length = b.nameStackEnd
}

// Truncate resets the write cursor to an earlier mark, discarding
// everything appended since. It must not be used to cut into the
// stack region.
func (b *Buffer) Truncate(mark int) {
	if mark < b.nameStackEnd {
		mark = b.nameStackEnd
	}
	b.length = mark
}

// PushName promotes the lexeme currently sitting at
// [splitPoint, length) into the open-tag stack: it appends the
// lexeme's length as a two-code-unit trailing integer and advances
// the split point past it. The lexeme region is empty again
// afterwards. It must be called with exactly the tag name as the
// current lexeme.
func (b *Buffer) PushName() {
	nameLen := b.length - b.nameStackEnd
	b.appendInt32(nameLen)
	b.nameStackEnd = b.length
}

// PopName reads the trailing length of the top stack frame, borrows
// its name, and rewinds the split point to the start of that frame.
// The returned slice remains valid only until the next mutating call;
// callers that need to discard the frame's storage too (the common
// case) should follow up with ClearLexeme, which additionally wipes
// the lexeme region. The stack must not be empty; StackEmpty can be
// used to check before calling.
func (b *Buffer) PopName() []uint16 {
	lengthPos := b.nameStackEnd - 2
	nameLen := b.readInt32(lengthPos)
	nameStart := lengthPos - nameLen
	name := b.data[nameStart:lengthPos:lengthPos]
	b.nameStackEnd = nameStart
	return name
}

// StackEmpty reports whether the open-tag stack has no frames.
func (b *Buffer) StackEmpty() bool { return b.nameStackEnd == 0 }
