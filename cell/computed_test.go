package cell_test

import (
	"testing"

	"github.com/delaneyj/cellparty/cell"
	"github.com/stretchr/testify/assert"
)

func TestComputedTracksUnwrappedCells(t *testing.T) {
	price := cell.New(3)
	qty := cell.New(2)
	calls := 0
	total := cell.Computed(func(tr *cell.Tracker) int {
		calls++
		return cell.Unwrap[int](tr, price) * cell.Unwrap[int](tr, qty)
	})
	assert.Equal(t, 6, total.Value())
	assert.Equal(t, 2, cell.SourceCount(total))

	var got []int
	stop := total.ObserveFunc(func(v int) {
		got = append(got, v)
	})
	assert.Equal(t, 1, price.ObserverCount())
	assert.Equal(t, 1, qty.ObserverCount())

	price.Set(4)
	qty.Set(3)
	assert.Equal(t, []int{8, 12}, got)

	stop()
	assert.Equal(t, 0, price.ObserverCount())
	assert.Equal(t, 0, qty.ObserverCount())
	assert.Equal(t, 12, total.Value())
}

// should discover dependencies on activation without a prior read
func TestComputedActivatesWithoutPriorRead(t *testing.T) {
	a := cell.New(1)
	c := cell.Computed(func(tr *cell.Tracker) int {
		return cell.Unwrap[int](tr, a) + 1
	})

	var got []int
	stop := c.ObserveFunc(func(v int) {
		got = append(got, v)
	})
	defer stop()
	a.Set(5)
	assert.Equal(t, []int{6}, got)
}

func TestComputedUntrackedRead(t *testing.T) {
	a := cell.New(1)
	b := cell.New(10)
	c := cell.Computed(func(tr *cell.Tracker) int {
		return cell.Unwrap[int](tr, a) + cell.Unwrap[int](nil, b)
	})

	var got []int
	stop := c.ObserveFunc(func(v int) {
		got = append(got, v)
	})
	defer stop()

	b.Set(20)
	assert.Empty(t, got)
	a.Set(2)
	assert.Equal(t, []int{22}, got)
	assert.Equal(t, 1, cell.SourceCount(c))
}

// should keep stale dependencies when branching, unless pruning is enabled
func TestComputedDynamicDependencies(t *testing.T) {
	run := func(t *testing.T, opts ...cell.ComputedOption) (cell.Cell[int], *cell.Var[bool], *cell.Var[int], *cell.Var[int]) {
		cond := cell.New(true)
		a := cell.New(1)
		b := cell.New(2)
		c := cell.Computed(func(tr *cell.Tracker) int {
			if cell.Unwrap[bool](tr, cond) {
				return cell.Unwrap[int](tr, a)
			}
			return cell.Unwrap[int](tr, b)
		}, opts...)
		return c, cond, a, b
	}

	t.Run("baseline", func(t *testing.T) {
		c, cond, a, b := run(t)
		calls := 0
		stop := c.ObserveFunc(func(int) {
			calls++
		})
		defer stop()

		cond.Set(false)
		assert.Equal(t, 2, c.Value())
		assert.Equal(t, 3, cell.SourceCount(c))
		assert.Equal(t, 1, a.ObserverCount())
		assert.Equal(t, 1, b.ObserverCount())

		calls = 0
		a.Set(100)
		assert.Equal(t, 1, calls, "stale dependency still notifies")
		assert.Equal(t, 2, c.Value())
	})

	t.Run("pruned", func(t *testing.T) {
		c, cond, a, b := run(t, cell.WithPruning())
		calls := 0
		stop := c.ObserveFunc(func(int) {
			calls++
		})

		cond.Set(false)
		assert.Equal(t, 2, cell.SourceCount(c))
		assert.Equal(t, 0, a.ObserverCount())
		assert.Equal(t, 1, b.ObserverCount())

		calls = 0
		a.Set(100)
		assert.Equal(t, 0, calls)

		stop()
		assert.Equal(t, 0, cond.ObserverCount())
		assert.Equal(t, 0, b.ObserverCount())
	})
}

func TestComputedPanicLeavesNoTrackingState(t *testing.T) {
	a := cell.New(0)
	bad := cell.Computed(func(tr *cell.Tracker) int {
		if cell.Unwrap[int](tr, a) == 0 {
			panic("boom")
		}
		return 1
	})
	assert.Panics(t, func() {
		bad.Value()
	})

	b := cell.New(5)
	good := cell.Computed(func(tr *cell.Tracker) int {
		return cell.Unwrap[int](tr, b)
	})
	assert.Equal(t, 5, good.Value())
	assert.Equal(t, 1, cell.SourceCount(good))
}
