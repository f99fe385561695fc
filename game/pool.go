package game

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrPoolExhausted is returned when a fixed-capacity pool has no free slot.
var ErrPoolExhausted = errors.New("pool exhausted")

// Handle locates a slot in a Pool. The generation changes every time the slot
// is released, so a handle kept past its owner's release no longer resolves.
// The zero Handle never resolves.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero (unset) handle.
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

// Pool is a fixed-capacity slab of T with O(1) acquire and release.
// Occupancy is tracked in a bitmap so traversal runs in slot order.
// Slots never move, so pointers returned by Acquire and Get stay valid
// until the slot is released.
type Pool[T any] struct {
	name        string
	slots       []T
	generations []uint32
	occupied    []uint64
	free        []uint32
	count       int
}

// NewPool creates a pool with room for capacity values.
func NewPool[T any](name string, capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		name:        name,
		slots:       make([]T, capacity),
		generations: make([]uint32, capacity),
		occupied:    make([]uint64, (capacity+63)/64),
		free:        make([]uint32, capacity),
	}
	// Free list is a stack; push in reverse so slot 0 is handed out first.
	for i := 0; i < capacity; i++ {
		p.free[i] = uint32(capacity - 1 - i)
		p.generations[i] = 1
	}
	return p
}

// Name returns the pool name used in errors and logs.
func (p *Pool[T]) Name() string { return p.name }

// Len returns the number of occupied slots.
func (p *Pool[T]) Len() int { return p.count }

// Cap returns the fixed capacity.
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Acquire takes a free slot, zeroes it and returns it with its handle.
func (p *Pool[T]) Acquire() (*T, Handle, error) {
	if len(p.free) == 0 {
		return nil, Handle{}, fmt.Errorf("%w: %s (capacity %d)", ErrPoolExhausted, p.name, len(p.slots))
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	var zero T
	p.slots[idx] = zero
	p.occupied[idx>>6] |= 1 << (idx & 63)
	p.count++

	return &p.slots[idx], Handle{Index: idx, Generation: p.generations[idx]}, nil
}

// Release frees the slot addressed by h. Stale or zero handles are ignored
// and report false.
func (p *Pool[T]) Release(h Handle) bool {
	if !p.Valid(h) {
		return false
	}
	idx := h.Index
	p.occupied[idx>>6] &^= 1 << (idx & 63)
	p.generations[idx]++
	if p.generations[idx] == 0 {
		// Generation 0 is reserved for the zero handle.
		p.generations[idx] = 1
	}
	var zero T
	p.slots[idx] = zero
	p.free = append(p.free, idx)
	p.count--
	return true
}

// Valid reports whether h addresses a live slot.
func (p *Pool[T]) Valid(h Handle) bool {
	if h.IsZero() || int(h.Index) >= len(p.slots) {
		return false
	}
	if p.occupied[h.Index>>6]&(1<<(h.Index&63)) == 0 {
		return false
	}
	return p.generations[h.Index] == h.Generation
}

// Get returns the value addressed by h, or false if h is stale.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.Valid(h) {
		return nil, false
	}
	return &p.slots[h.Index], true
}

// Each calls fn for every occupied slot in slot order. Returning false from
// fn stops the traversal.
func (p *Pool[T]) Each(fn func(Handle, *T) bool) {
	for w, word := range p.occupied {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			word &^= 1 << bit
			idx := uint32(w<<6 + bit)
			if !fn(Handle{Index: idx, Generation: p.generations[idx]}, &p.slots[idx]) {
				return
			}
		}
	}
}

// AppendHandles appends the handles of all occupied slots, in slot order, to
// dst. The result is a snapshot: slots acquired afterwards are not in it.
func (p *Pool[T]) AppendHandles(dst []Handle) []Handle {
	p.Each(func(h Handle, _ *T) bool {
		dst = append(dst, h)
		return true
	})
	return dst
}
