package orderedlist_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	ol "github.com/justincpresley/record-catalog/util/orderedlist"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

type ints = ol.List[int, ol.Ascending[int]]

func fill(l *ints, vals ...int) {
	for _, v := range vals {
		l.Adopt(v)
	}
}

func TestInsertKeepsOrder(t *testing.T) {
	l := ol.New[int, ol.Ascending[int]]()
	fill(l, 5, 3, 8, 1)
	assert.Equal(t, []int{1, 3, 5, 8}, slices.Collect(l.All()))
	assert.Equal(t, []int{8, 5, 3, 1}, slices.Collect(l.Backward()))
	assert.Equal(t, 4, l.Len())
	assert.False(t, l.Empty())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var l ints
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Empty())
	assert.Equal(t, l.End(), l.Begin())
	assert.True(t, l.Find(1).Done())
	l.Clear()
	require.NoError(t, l.Insert(4))
	assert.Equal(t, []int{4}, slices.Collect(l.All()))
}

type entry struct {
	key string
	seq int
}

func (e entry) Less(o entry) bool { return e.key < o.key }

func TestEqualValuesGoBeforeExisting(t *testing.T) {
	l := ol.New[entry, ol.ByLess[entry]]()
	l.Adopt(entry{"b", 1})
	l.Adopt(entry{"a", 2})
	l.Adopt(entry{"b", 3})
	assert.Equal(t, []entry{{"a", 2}, {"b", 3}, {"b", 1}}, slices.Collect(l.All()))

	it := l.Find(entry{key: "b"})
	require.False(t, it.Done())
	assert.Equal(t, 3, it.Value().seq)
}

func TestEraseFound(t *testing.T) {
	l := ol.New[int, ol.Ascending[int]]()
	fill(l, 1, 3, 5, 8)
	it := l.Find(3)
	require.False(t, it.Done())
	l.Erase(it)
	assert.Equal(t, []int{1, 5, 8}, slices.Collect(l.All()))
	assert.Equal(t, 3, l.Len())

	l.Erase(l.Begin())
	l.Erase(l.Find(8))
	assert.Equal(t, []int{5}, slices.Collect(l.All()))
	assert.Equal(t, []int{5}, slices.Collect(l.Backward()))
	l.Erase(l.Begin())
	assert.True(t, l.Empty())
	assert.Equal(t, l.End(), l.Begin())
}

func TestClear(t *testing.T) {
	before := ol.LiveNodes()
	l := ol.New[int, ol.Ascending[int]]()
	for i := range 10 {
		l.Adopt(i)
	}
	assert.Equal(t, before+10, ol.LiveNodes())
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, l.End(), l.Begin())
	assert.Equal(t, before, ol.LiveNodes())
	l.Adopt(7)
	assert.Equal(t, 1, l.Len())
	l.Clear()
}

func TestRandomOperationsStayConsistent(t *testing.T) {
	rnd := rand.New(rand.NewSource(381))
	l := ol.New[int, ol.Ascending[int]]()
	inserted, erased := 0, 0
	for range 500 {
		if l.Len() > 0 && rnd.Intn(3) == 0 {
			it := l.Find(rnd.Intn(50))
			if !it.Done() {
				l.Erase(it)
				erased++
			}
		} else {
			require.NoError(t, l.Insert(rnd.Intn(50)))
			inserted++
		}
		if !assertConsistent(t, l, ol.Ascending[int]{}) {
			return
		}
	}
	assert.Equal(t, inserted-erased, l.Len())
	l.Clear()
}

type counting struct {
	calls *int
}

func (c counting) Precedes(a, b int) bool {
	*c.calls++
	return a < b
}

func TestFindStopsPastPosition(t *testing.T) {
	calls := 0
	l := ol.NewWithOrdering[int](counting{calls: &calls})
	for i := range 10 {
		l.Adopt(2 * i)
	}

	tests := []struct {
		probe int
		found bool
		calls int
	}{
		{probe: 5, found: false, calls: 5},
		{probe: 4, found: true, calls: 4},
		{probe: 0, found: true, calls: 2},
		{probe: -1, found: false, calls: 2},
		{probe: 18, found: true, calls: 11},
		{probe: 100, found: false, calls: 10},
	}
	for _, tc := range tests {
		calls = 0
		it := l.Find(tc.probe)
		assert.Equal(t, tc.found, !it.Done(), "probe %d", tc.probe)
		if tc.found {
			assert.Equal(t, tc.probe, it.Value())
		}
		assert.Equal(t, tc.calls, calls, "probe %d", tc.probe)
	}
	l.Clear()
}

func TestCopyIsIndependent(t *testing.T) {
	a := ol.New[int, ol.Ascending[int]]()
	fill(a, 4, 2, 6)
	b, err := a.Clone()
	require.NoError(t, err)
	b.Adopt(1)
	b.Erase(b.Find(6))
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(a.All()))
	assert.Equal(t, []int{1, 2, 4}, slices.Collect(b.All()))

	c := ol.New[int, ol.Ascending[int]]()
	fill(c, 9)
	require.NoError(t, c.Assign(a))
	a.Erase(a.Begin())
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(c.All()))
	assert.Equal(t, []int{4, 6}, slices.Collect(a.All()))

	require.NoError(t, c.Assign(c))
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(c.All()))

	a.Clear()
	b.Clear()
	c.Clear()
}

func TestMoveEmptiesSource(t *testing.T) {
	a := ol.New[int, ol.Ascending[int]]()
	fill(a, 3, 1, 2)
	b := a.Move()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, a.End(), a.Begin())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(b.All()))

	c := ol.New[int, ol.Ascending[int]]()
	fill(c, 10, 11)
	before := ol.LiveNodes()
	c.MoveFrom(b)
	assert.Equal(t, before-2, ol.LiveNodes())
	assert.True(t, b.Empty())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(c.All()))

	c.MoveFrom(c)
	assert.Equal(t, 3, c.Len())

	a.Adopt(0)
	assert.Equal(t, []int{0}, slices.Collect(a.All()))
	a.Clear()
	c.Clear()
}

func TestSwap(t *testing.T) {
	a := ol.New[int, ol.Ascending[int]]()
	b := ol.New[int, ol.Ascending[int]]()
	fill(a, 1, 2)
	fill(b, 7)
	ia := a.Begin()
	a.Swap(b)
	assert.Equal(t, []int{7}, slices.Collect(a.All()))
	assert.Equal(t, []int{1, 2}, slices.Collect(b.All()))

	// iterators follow their nodes
	b.Erase(ia)
	assert.Equal(t, []int{2}, slices.Collect(b.All()))
	a.Clear()
	b.Clear()
}

type budget struct {
	left int
}

var errCopy = errors.New("copy failed")

type fragile struct {
	v int
	b *budget
}

func (f fragile) Less(o fragile) bool { return f.v < o.v }

func (f fragile) Clone() (fragile, error) {
	if f.b.left == 0 {
		return fragile{}, errCopy
	}
	f.b.left--
	return f, nil
}

type fragiles = ol.List[fragile, ol.ByLess[fragile]]

func values(l *fragiles) []int {
	var ret []int
	for f := range l.All() {
		ret = append(ret, f.v)
	}
	return ret
}

func TestFailedCopyLeavesNoTrace(t *testing.T) {
	b := &budget{left: 100}
	src := ol.New[fragile, ol.ByLess[fragile]]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, src.Insert(fragile{v, b}))
	}
	dst := ol.New[fragile, ol.ByLess[fragile]]()
	require.NoError(t, dst.Insert(fragile{9, b}))

	b.left = 2
	before := ol.LiveNodes()
	err := dst.Assign(src)
	assert.ErrorIs(t, err, errCopy)
	assert.Equal(t, []int{9}, values(dst))
	assert.Equal(t, before, ol.LiveNodes())

	b.left = 4
	c, err := src.Clone()
	assert.ErrorIs(t, err, errCopy)
	assert.Nil(t, c)
	assert.Equal(t, before, ol.LiveNodes())

	b.left = 0
	assert.ErrorIs(t, src.Insert(fragile{0, b}), errCopy)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(src))
	assert.Equal(t, before, ol.LiveNodes())

	b.left = 5
	require.NoError(t, dst.Assign(src))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values(dst))
	assert.Equal(t, before+4, ol.LiveNodes())

	src.Clear()
	dst.Clear()
}

type volatile struct {
	v      int
	panics bool
}

func (v volatile) Less(o volatile) bool { return v.v < o.v }

func (v volatile) Clone() (volatile, error) {
	if v.panics {
		panic("volatile copy")
	}
	return v, nil
}

func TestPanickingCopyLeavesNoTrace(t *testing.T) {
	src := ol.New[volatile, ol.ByLess[volatile]]()
	src.Adopt(volatile{v: 1})
	src.Adopt(volatile{v: 2})
	src.Adopt(volatile{v: 3, panics: true})
	dst := ol.New[volatile, ol.ByLess[volatile]]()
	dst.Adopt(volatile{v: 8})

	before := ol.LiveNodes()
	assert.PanicsWithValue(t, "volatile copy", func() { _ = dst.Assign(src) })
	assert.Equal(t, before, ol.LiveNodes())
	assert.Equal(t, 1, dst.Len())
	assert.Equal(t, 8, dst.Begin().Value().v)

	assert.Panics(t, func() { _, _ = src.Clone() })
	assert.Equal(t, before, ol.LiveNodes())
	src.Clear()
	dst.Clear()
}

func TestPanickingOrderingLeavesListUnchanged(t *testing.T) {
	l := ol.NewWithOrdering[int](ol.Func[int](func(a, b int) bool {
		if a == 99 || b == 99 {
			panic("unorderable")
		}
		return a < b
	}))
	l.Adopt(2)
	l.Adopt(1)
	l.Adopt(3)
	before := ol.LiveNodes()
	assert.Panics(t, func() { l.Adopt(99) })
	assert.Equal(t, before, ol.LiveNodes())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))
	l.Clear()
}

type word string

func (w word) Less(o word) bool { return w < o }

func TestPointeeOrdering(t *testing.T) {
	pear, apple, fig := word("pear"), word("apple"), word("fig")
	l := ol.New[*word, ol.ByPointee[word]]()
	l.Adopt(&pear)
	l.Adopt(&apple)
	l.Adopt(&fig)

	var got []word
	for p := range l.All() {
		got = append(got, *p)
	}
	assert.Equal(t, []word{"apple", "fig", "pear"}, got)

	probe := word("fig")
	it := l.Find(&probe)
	require.False(t, it.Done())
	assert.Same(t, &fig, it.Value())

	l.Clear()
	assert.Equal(t, word("pear"), pear)
}

func TestIteratorAdvance(t *testing.T) {
	l := ol.New[int, ol.Ascending[int]]()
	fill(l, 10, 20, 30)
	it := l.Begin()
	prev := it.Advance()
	assert.Equal(t, 10, prev.Value())
	assert.Equal(t, 20, it.Value())
	assert.Equal(t, 30, it.Next().Value())
	assert.True(t, it.Next().Next().Done())
	assert.Equal(t, l.End(), it.Next().Next())

	*it.Ref() = 25
	assert.Equal(t, []int{10, 25, 30}, slices.Collect(l.All()))

	// insertion elsewhere keeps iterators valid
	l.Adopt(5)
	l.Adopt(40)
	assert.Equal(t, 25, it.Value())
	assert.Equal(t, 30, it.Next().Value())
	l.Clear()
}

func TestPreconditionViolationsPanic(t *testing.T) {
	a := ol.New[int, ol.Ascending[int]]()
	b := ol.New[int, ol.Ascending[int]]()
	fill(a, 1, 2)
	fill(b, 1)

	var end ol.Iterator[int]
	assert.Panics(t, func() { end.Value() })
	assert.Panics(t, func() { end.Next() })
	assert.Panics(t, func() { end.Advance() })
	assert.Panics(t, func() { a.Erase(a.End()) })
	assert.Panics(t, func() { a.Erase(b.Begin()) })

	it := a.Begin()
	a.Erase(it)
	assert.Panics(t, func() { a.Erase(it) })
	assert.Equal(t, []int{2}, slices.Collect(a.All()))
	a.Clear()
	b.Clear()
}

func assertConsistent[T any, O ol.Ordering[T]](t *testing.T, l *ol.List[T, O], of O) bool {
	fwd := slices.Collect(l.All())
	bwd := slices.Collect(l.Backward())
	slices.Reverse(bwd)
	ok := assert.Equal(t, l.Len(), len(fwd)) && assert.Equal(t, fwd, bwd)
	for i := 1; i < len(fwd); i++ {
		ok = assert.False(t, of.Precedes(fwd[i], fwd[i-1]), "out of order at %d", i) && ok
	}
	return ok
}
