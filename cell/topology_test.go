package cell_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/cellparty/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologyDiamondGlitch(t *testing.T) {
	// There is no batching, so "D" hears about "A" once through "B" and once
	// through "C". The first notification is the glitch: "C" has not been
	// re-read yet from D's point of view, but pull consistency still makes
	// both notifications carry fresh values.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	a := cell.New("a")
	b := cell.Map(a, func(v string) string { return v })
	c := cell.Map(a, func(v string) string { return v })
	d := cell.Zip2(b, c, func(b, c string) string {
		return b + " " + c
	})
	assert.Equal(t, "a a", d.Value())

	var got []string
	stop := d.ObserveFunc(func(v string) {
		got = append(got, v)
	})
	defer stop()

	a.Set("aa")
	assert.Equal(t, []string{"aa aa", "aa aa"}, got)
	assert.Equal(t, 2, a.ObserverCount())
}

func TestTopologyDropAbaUpdates(t *testing.T) {
	//     A
	//   / |
	//  B  |
	//   \ |
	//     C
	//     |
	//     D
	a := cell.New(2)
	b := cell.Map(a, func(v int) int { return v - 1 })
	c := cell.Zip2(a, b, func(a, b int) int { return a + b })
	callCount := 0
	d := cell.Map(c, func(c int) string {
		callCount++
		return fmt.Sprintf("d: %d", c)
	})

	assert.Equal(t, "d: 3", d.Value())
	assert.Equal(t, 1, callCount)

	var got []string
	stop := d.ObserveFunc(func(v string) {
		got = append(got, v)
	})
	a.Set(4)
	assert.Equal(t, []string{"d: 7", "d: 7"}, got)
	stop()

	assert.Equal(t, 0, a.ObserverCount())
	assert.Equal(t, 0, b.ObserverCount())
	assert.Equal(t, 0, c.ObserverCount())
}

func TestTopologyDeepChainLeavesNoSubscriptions(t *testing.T) {
	src := cell.New(0)
	chain := []cell.Cell[int]{src}
	for i := 0; i < 50; i++ {
		chain = append(chain, cell.Map(chain[len(chain)-1], func(v int) int {
			return v + 1
		}))
	}
	last := chain[len(chain)-1]

	var got []int
	stop := cell.GetAndObserve(last, func(v int) {
		got = append(got, v)
	})
	src.Set(10)
	assert.Equal(t, []int{50, 60}, got)
	for _, c := range chain[:len(chain)-1] {
		assert.Equal(t, 1, c.ObserverCount())
	}

	stop()
	for _, c := range chain {
		assert.Equal(t, 0, c.ObserverCount())
	}
}

// should stop a feedback loop with a DepthError
func TestNotifyDepthGuard(t *testing.T) {
	prev := cell.MaxNotifyDepth
	cell.MaxNotifyDepth = 64
	defer func() { cell.MaxNotifyDepth = prev }()

	a := cell.New(0)
	b := cell.Map(a, func(v int) int { return v + 1 })
	stop := b.ObserveFunc(func(v int) {
		a.Set(v)
	})
	defer stop()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		a.Set(1)
	}()
	require.NotNil(t, recovered)
	err, ok := recovered.(error)
	require.True(t, ok)
	assert.True(t, errors.Is(err, cell.ErrNotifyDepth))

	var depthErr *cell.DepthError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 65, depthErr.Depth)

	stop()
	a.Set(1)
	assert.Equal(t, 1, a.Value())
}

// should propagate through a chain longer than the depth guard
func TestTopologyChainDeeperThanDepthGuard(t *testing.T) {
	src := cell.New(0)
	var last cell.Cell[int] = src
	n := cell.MaxNotifyDepth + 1
	for i := 0; i < n; i++ {
		last = cell.Map(last, func(v int) int { return v + 1 })
	}

	var got int
	stop := last.ObserveFunc(func(v int) {
		got = v
	})
	defer stop()

	assert.NotPanics(t, func() {
		src.Set(1)
	})
	assert.Equal(t, n+1, got)
	assert.Equal(t, n+1, last.Value())
}

// should allow a callback to write back to its own cell a bounded number of times
func TestNotifyDepthGuardAllowsBoundedReentry(t *testing.T) {
	prev := cell.MaxNotifyDepth
	cell.MaxNotifyDepth = 4
	defer func() { cell.MaxNotifyDepth = prev }()

	a := cell.New(0)
	stop := a.ObserveFunc(func(v int) {
		if v > 10 {
			a.Set(v - 1)
		}
	})
	defer stop()

	assert.NotPanics(t, func() {
		a.Set(13)
	})
	assert.Equal(t, 10, a.Value())
	assert.Panics(t, func() {
		a.Set(20)
	})

	// the guard leaves no residue behind
	assert.NotPanics(t, func() {
		a.Set(12)
	})
	assert.Equal(t, 10, a.Value())
}
