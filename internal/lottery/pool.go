// Package lottery implements a weighted lottery pool: distinct items with
// ticket counts, drawn at random proportionally to the tickets they hold.
//
// Pool is not safe for concurrent use. Callers sharing a pool must guard
// every call themselves.
package lottery

import (
	"iter"
	"math"

	"go.uber.org/zap"
)

// Version is reported by Dump.
const Version = "1.0.0.0"

// NoHint passed to DrawKey means "use the pool's random source".
const NoHint = -1

// Entry is a snapshot of a single item and its remaining tickets.
type Entry[T any] struct {
	Item  T
	Count int
}

// Pool holds entries in insertion order. Each entry occupies a contiguous
// range of keys, so a draw is a linear scan over the entries.
type Pool[T any] struct {
	entries []Entry[T]
	total   int
	eq      func(a, b T) bool

	capacity   int
	maxEntries int
	rnd        Rand
	logger     *zap.Logger
}

// New creates a pool for items compared with ==.
func New[T comparable](opts ...Option) *Pool[T] {
	return NewFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewFunc creates a pool that compares items with eq.
func NewFunc[T any](eq func(a, b T) bool, opts ...Option) *Pool[T] {
	o := options{
		capacity: math.MaxInt,
		rnd:      globalRand{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.L()
	}

	return &Pool[T]{
		eq:         eq,
		capacity:   o.capacity,
		maxEntries: o.maxEntries,
		rnd:        o.rnd,
		logger:     o.logger.Named("lottery"),
	}
}

// Draw takes one ticket out of the pool, picked with the pool's random source.
// Returns false if the pool is empty.
func (p *Pool[T]) Draw() (T, bool) {
	if p.total <= 0 {
		var zero T
		return zero, false
	}
	return p.drawKey(p.rnd.Int())
}

// DrawKey takes out the ticket selected by hint mod Count(). The result is a
// pure function of the pool state and hint. NoHint falls back to Draw, any
// other negative hint is rejected.
func (p *Pool[T]) DrawKey(hint int) (T, bool) {
	if hint == NoHint {
		return p.Draw()
	}

	var zero T
	if p.total <= 0 || hint < 0 {
		return zero, false
	}
	return p.drawKey(hint)
}

func (p *Pool[T]) drawKey(r int) (T, bool) {
	var zero T
	if r < 0 {
		// a misbehaving Rand must not select an invalid range
		return zero, false
	}

	idx := p.find(r % p.total)
	if idx < 0 {
		return zero, false
	}

	item := p.entries[idx].Item
	p.decrement(idx)
	return item, true
}

// find returns the index of the entry whose range contains key.
func (p *Pool[T]) find(key int) int {
	var bottom, top int
	for i, e := range p.entries {
		bottom = top
		top += e.Count
		if key >= bottom && key < top {
			return i
		}
	}
	return -1
}

func (p *Pool[T]) decrement(idx int) {
	p.entries[idx].Count--
	if p.entries[idx].Count == 0 {
		p.remove(idx)
	}
	p.total--
}

func (p *Pool[T]) remove(idx int) {
	copy(p.entries[idx:], p.entries[idx+1:])
	var zero Entry[T]
	p.entries[len(p.entries)-1] = zero
	p.entries = p.entries[:len(p.entries)-1]
}

func (p *Pool[T]) index(item T) int {
	for i := range p.entries {
		if p.eq(item, p.entries[i].Item) {
			return i
		}
	}
	return -1
}

// Clear removes every entry.
func (p *Pool[T]) Clear() {
	clear(p.entries)
	p.entries = p.entries[:0]
	p.total = 0
}

// Count returns the total number of tickets in the pool.
func (p *Pool[T]) Count() int {
	return p.total
}

// CountOf returns the tickets held by item, or 0 if it is not in the pool.
func (p *Pool[T]) CountOf(item T) int {
	idx := p.index(item)
	if idx < 0 {
		return 0
	}
	return p.entries[idx].Count
}

// Len returns the number of distinct items.
func (p *Pool[T]) Len() int {
	return len(p.entries)
}

// Capacity returns the maximum number of tickets the pool can hold.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// Entries returns a copy of the entries in draw order.
func (p *Pool[T]) Entries() []Entry[T] {
	res := make([]Entry[T], len(p.entries))
	copy(res, p.entries)
	return res
}

// All iterates over items and their counts in draw order. The pool must not
// be modified during iteration.
func (p *Pool[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, e := range p.entries {
			if !yield(e.Item, e.Count) {
				return
			}
		}
	}
}
