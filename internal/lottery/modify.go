package lottery

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

var (
	ErrZeroDelta        = fmt.Errorf("zero ticket delta")
	ErrCapacityExceeded = fmt.Errorf("pool capacity exceeded")
	ErrInsufficient     = fmt.Errorf("not enough tickets to withdraw")
	ErrUnknownItem      = fmt.Errorf("item is not in the pool")
	ErrStorageFull      = fmt.Errorf("no room for a new entry")
)

// Adjust deposits (delta > 0) or withdraws (delta < 0) tickets for a single
// item. The pool is left untouched when an error is returned.
func (p *Pool[T]) Adjust(item T, delta int) error {
	if delta == 0 {
		return ErrZeroDelta
	}
	if delta > 0 && p.capacity-p.total < delta {
		return ErrCapacityExceeded
	}

	idx := p.index(item)
	if idx >= 0 {
		count := p.entries[idx].Count + delta
		switch {
		case count < 0:
			return ErrInsufficient
		case count == 0:
			p.remove(idx)
		default:
			p.entries[idx].Count = count
		}
		p.total += delta
		return nil
	}

	if delta < 0 {
		return ErrUnknownItem
	}

	if err := p.insert(item, delta); err != nil {
		return err
	}
	p.total += delta
	return nil
}

// insert appends a new entry. It is the only place where the entry store grows.
func (p *Pool[T]) insert(item T, count int) error {
	if p.maxEntries > 0 && len(p.entries) >= p.maxEntries {
		p.logger.Warn(
			"failed to insert lottery entry",
			zap.Int("entries", len(p.entries)),
			zap.Int("maxEntries", p.maxEntries),
			zap.Error(ErrStorageFull),
		)
		return ErrStorageFull
	}

	p.entries = append(p.entries, Entry[T]{Item: item, Count: count})
	return nil
}

// Modify applies counts[i] to items[i] for every i. Elements that cannot be
// applied are skipped without affecting the rest. Returns the number of
// applied elements; mismatched or empty input is ignored entirely.
func (p *Pool[T]) Modify(items []T, counts []int) int {
	if len(items) == 0 || len(items) != len(counts) {
		p.logger.Debug(
			"ignoring bulk modify",
			zap.Int("items", len(items)),
			zap.Int("counts", len(counts)),
		)
		return 0
	}

	return p.ModifySeq(func(yield func(T, int) bool) {
		for i := range items {
			if !yield(items[i], counts[i]) {
				return
			}
		}
	})
}

// ModifySeq is Modify for an (item, delta) sequence, applied in iteration
// order.
func (p *Pool[T]) ModifySeq(seq iter.Seq2[T, int]) int {
	var applied, pos int
	for item, delta := range seq {
		pos++
		err := p.Adjust(item, delta)
		if err != nil {
			p.logger.Debug(
				"skipping lottery element",
				zap.Int("position", pos),
				zap.Int("delta", delta),
				zap.Error(err),
			)
			continue
		}
		applied++
	}
	return applied
}

// ModifyMap applies every (item, delta) pair of m. Map iteration order is
// unspecified, so when capacity can run out the set of applied deposits may
// differ between calls; use ModifySeq if the order matters.
func ModifyMap[T comparable](p *Pool[T], m map[T]int) int {
	return p.ModifySeq(func(yield func(T, int) bool) {
		for item, delta := range m {
			if !yield(item, delta) {
				return
			}
		}
	})
}
