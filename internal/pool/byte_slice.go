// Package pool provides sync.Pool-backed recycling of byte and
// code-unit slices, so that back-to-back parses don't each pay for a
// fresh allocation. The parser's scratch buffer draws from a
// Uint16SlicePool.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool recycles []byte buffers.
type ByteSlicePool struct {
	pool sync.Pool
}

// ByteSlice returns a new ByteSlicePool.
func ByteSlice() *ByteSlicePool {
	return &ByteSlicePool{
		pool: sync.Pool{
			New: func() any {
				b := make([]byte, 0, defaultCapacity)
				return &b
			},
		},
	}
}

// Get returns a zero-length slice with at least the pool's default
// capacity.
func (p *ByteSlicePool) Get() []byte {
	return p.GetCapacity(defaultCapacity)
}

// GetCapacity returns a zero-length slice with at least capacity n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	bp := p.pool.Get().(*[]byte)
	b := *bp
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns b to the pool for reuse. The caller must not use b
// after calling Put.
func (p *ByteSlicePool) Put(b []byte) {
	b = b[:0]
	p.pool.Put(&b)
}

const defaultUint16Capacity = 128

// Uint16SlicePool recycles []uint16 buffers, as used by the parser's
// scratch buffer.
type Uint16SlicePool struct {
	pool sync.Pool
}

// Uint16Slice returns a new Uint16SlicePool.
func Uint16Slice() *Uint16SlicePool {
	return &Uint16SlicePool{
		pool: sync.Pool{
			New: func() any {
				b := make([]uint16, 0, defaultUint16Capacity)
				return &b
			},
		},
	}
}

// Get returns a zero-length slice with at least the pool's default
// capacity.
func (p *Uint16SlicePool) Get() []uint16 {
	return p.GetCapacity(defaultUint16Capacity)
}

// GetCapacity returns a zero-length slice with at least capacity n.
func (p *Uint16SlicePool) GetCapacity(n int) []uint16 {
	bp := p.pool.Get().(*[]uint16)
	b := *bp
	if cap(b) < n {
		b = make([]uint16, 0, n)
	}
	return b[:0]
}

// Put returns b to the pool for reuse. The caller must not use b
// after calling Put.
func (p *Uint16SlicePool) Put(b []uint16) {
	b = b[:0]
	p.pool.Put(&b)
}
