package lottery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariants[T any](t *testing.T, p *Pool[T]) {
	t.Helper()

	sum := 0
	for _, e := range p.Entries() {
		assert.Positive(t, e.Count)
		sum += e.Count
	}
	assert.Equal(t, sum, p.Count())
	assert.LessOrEqual(t, p.Count(), p.Capacity())
}

func newAB(t *testing.T, opts ...Option) *Pool[string] {
	p := New[string](opts...)
	applied := p.Modify([]string{"A", "B"}, []int{3, 2})
	require.Equal(t, 2, applied)
	return p
}

func TestDrawKeyRanges(t *testing.T) {
	tests := []struct {
		key  int
		want string
	}{
		{0, "A"},
		{1, "A"},
		{2, "A"},
		{3, "B"},
		{4, "B"},
		{5, "A"},
		{9, "B"},
	}

	for _, tt := range tests {
		p := newAB(t)
		got, ok := p.DrawKey(tt.key)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "key %d", tt.key)
		assert.Equal(t, 4, p.Count())
		checkInvariants(t, p)
	}
}

func TestDrawKeyDeterministic(t *testing.T) {
	p1 := newAB(t)
	p2 := newAB(t)

	for _, key := range []int{7, 0, 3, 100, 2} {
		a, ok1 := p1.DrawKey(key)
		b, ok2 := p2.DrawKey(key)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, p1.Entries(), p2.Entries())
}

func TestDrawRemovesLastTicket(t *testing.T) {
	p := New[string]()
	p.Modify([]string{"A", "B"}, []int{1, 2})

	got, ok := p.DrawKey(0)
	require.True(t, ok)
	assert.Equal(t, "A", got)
	assert.Equal(t, 0, p.CountOf("A"))
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, p.Count())

	got, ok = p.DrawKey(1)
	require.True(t, ok)
	assert.Equal(t, "B", got)
	assert.Equal(t, 1, p.CountOf("B"))
	checkInvariants(t, p)
}

func TestDrawEmptyPool(t *testing.T) {
	p := New[string]()

	_, ok := p.Draw()
	assert.False(t, ok)
	_, ok = p.DrawKey(0)
	assert.False(t, ok)
	assert.Equal(t, 0, p.Count())
}

func TestDrawKeyNegative(t *testing.T) {
	p := newAB(t)

	_, ok := p.DrawKey(-2)
	assert.False(t, ok)
	assert.Equal(t, 5, p.Count())
	assert.Equal(t, 3, p.CountOf("A"))
	assert.Equal(t, 2, p.CountOf("B"))
}

type fixedRand int

func (r fixedRand) Int() int { return int(r) }

func TestDrawUsesRand(t *testing.T) {
	p := newAB(t, WithRand(fixedRand(3)))

	got, ok := p.Draw()
	require.True(t, ok)
	assert.Equal(t, "B", got)

	got, ok = p.DrawKey(NoHint)
	require.True(t, ok)
	// 3 mod 4 with [(A,3),(B,1)]
	assert.Equal(t, "B", got)
	assert.Equal(t, 0, p.CountOf("B"))
}

func TestDrawRejectsNegativeRand(t *testing.T) {
	p := newAB(t, WithRand(fixedRand(-1)))

	_, ok := p.Draw()
	assert.False(t, ok)
	assert.Equal(t, 5, p.Count())
}

func TestDrawUntilEmpty(t *testing.T) {
	p := newAB(t, WithRand(rand.New(rand.NewSource(42))))

	drawn := map[string]int{}
	for {
		item, ok := p.Draw()
		if !ok {
			break
		}
		drawn[item]++
		checkInvariants(t, p)
	}

	assert.Equal(t, map[string]int{"A": 3, "B": 2}, drawn)
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 0, p.Len())
}

func TestClear(t *testing.T) {
	p := newAB(t)

	p.Clear()
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 0, p.CountOf("A"))
	assert.Empty(t, p.Entries())

	p.Clear()
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, 0, p.CountOf("B"))
	assert.Equal(t, 0, p.Len())

	p.Modify([]string{"C"}, []int{1})
	assert.Equal(t, 1, p.Count())
}

func TestEntriesOrder(t *testing.T) {
	p := New[int]()
	p.Modify([]int{3, 1, 2, 1}, []int{5, 1, 2, 4})

	assert.Equal(t, []Entry[int]{
		{Item: 3, Count: 5},
		{Item: 1, Count: 5},
		{Item: 2, Count: 2},
	}, p.Entries())

	var items []int
	for item, count := range p.All() {
		items = append(items, item)
		assert.Equal(t, p.CountOf(item), count)
	}
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestEntriesIsCopy(t *testing.T) {
	p := newAB(t)

	entries := p.Entries()
	entries[0].Count = 100

	assert.Equal(t, 3, p.CountOf("A"))
}

type prize struct {
	Name  string
	Tiers []int
}

func TestNewFunc(t *testing.T) {
	p := NewFunc(func(a, b prize) bool { return a.Name == b.Name })

	gold := prize{Name: "gold", Tiers: []int{1}}
	silver := prize{Name: "silver", Tiers: []int{2, 3}}

	p.Modify([]prize{gold, silver, {Name: "gold"}}, []int{1, 2, 3})
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 4, p.CountOf(prize{Name: "gold"}))

	got, ok := p.DrawKey(4)
	require.True(t, ok)
	assert.Equal(t, "silver", got.Name)
	assert.Equal(t, []int{2, 3}, got.Tiers)
	checkInvariants(t, p)
}
