package rdesc

import "github.com/petuhovskiy/lotterybox/internal/lottery"

// Wrand is a weighted choice between items. Items may repeat, each position is
// picked with probability Weight/sum(Weight). Non-positive weights are never
// picked.
type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	Weight int `json:"weight" yaml:"weight"`
	Item   T   `json:"item" yaml:"item"`
}

// Valid reports whether at least one item can be picked.
func (w Wrand[T]) Valid() bool {
	for _, item := range w {
		if item.Weight > 0 {
			return true
		}
	}
	return false
}

// Pick returns a random item chosen with r, or with the process-wide
// generator if r is nil. Panics if the choice is not Valid.
func (w Wrand[T]) Pick(r lottery.Rand) T {
	return w.pick(lottery.NoHint, r)
}

// PickKey returns the item selected by key, see lottery.Pool.DrawKey.
func (w Wrand[T]) PickKey(key int) T {
	return w.pick(key, nil)
}

func (w Wrand[T]) pick(key int, r lottery.Rand) T {
	// choices are drawn with replacement, so a throwaway pool is enough
	pool := lottery.New[int](lottery.WithRand(r))
	for i, item := range w {
		if item.Weight > 0 {
			_ = pool.Adjust(i, item.Weight)
		}
	}

	idx, ok := pool.DrawKey(key)
	if !ok {
		panic("rdesc: nothing to pick")
	}
	return w[idx].Item
}
