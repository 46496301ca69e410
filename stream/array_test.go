package stream_test

import (
	"testing"

	"github.com/delaneyj/cellparty/cell"
	"github.com/delaneyj/cellparty/stream"
	"github.com/delaneyj/cellparty/stream/streamtest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ev = streamtest.Event

var (
	ins = streamtest.Insert
	rem = streamtest.Remove
)

func recordArray[T any](a *stream.CellArray[T]) *streamtest.Recorder[T, stream.Key] {
	return streamtest.Record[T, stream.Key](a)
}

func assertEvents(t *testing.T, want []ev, got []ev) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestCellArrayReplaysOnSubscribe(t *testing.T) {
	a := stream.NewCellArray(1, 2, 3)
	r := recordArray(a)
	defer r.Stop()

	assertEvents(t, []ev{ins(0), ins(1), ins(2)}, r.Events())
	assert.Equal(t, []int{1, 2, 3}, r.Values())
	assert.Equal(t, a.Keys(), r.Keys())
}

func TestCellArrayInsertRemove(t *testing.T) {
	a := stream.NewCellArray(1, 2, 3)
	r := recordArray(a)
	defer r.Stop()
	r.Reset()

	require.NoError(t, a.Insert(0, 5))
	assert.Equal(t, []int{5, 1, 2, 3}, a.Values().Value())
	assertEvents(t, []ev{ins(0)}, r.Events())

	v, ok := a.Remove(1)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{5, 2, 3}, a.Values().Value())
	assertEvents(t, []ev{ins(0), rem(1)}, r.Events())
	assert.Equal(t, []int{5, 2, 3}, r.Values())

	_, ok = a.Remove(3)
	assert.False(t, ok)
	_, ok = a.Remove(-1)
	assert.False(t, ok)
	assert.Len(t, r.Events(), 2)
}

// should keep item cell identity when items shift
func TestCellArrayInsertPreservesIdentity(t *testing.T) {
	a := stream.NewCellArray("a", "b")
	before := a.Items()
	keys := a.Keys()

	require.NoError(t, a.Insert(1, "x"))
	after := a.Items()
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[1], after[2])
	assert.Equal(t, keys[1], a.Keys()[2])
	assert.NotContains(t, keys, a.Keys()[1])
}

// should emit the insert before the length changes
func TestCellArrayPushOrdering(t *testing.T) {
	a := stream.NewCellArray[int]()
	var order []string
	stopLen := a.Len().ObserveFunc(func(n int) {
		order = append(order, "len")
	})
	defer stopLen()
	stop := a.Observe(
		func(i int, item cell.Cell[int], _ stream.Key) {
			order = append(order, "insert")
			assert.Equal(t, len(a.Items())-1, i, "items already reflect the insert")
		},
		func(int) {
			order = append(order, "remove")
		},
	)
	defer stop()

	a.Push(1)
	a.Push(2)
	a.Pop()
	assert.Equal(t, []string{"insert", "len", "insert", "len", "remove", "len"}, order)
	assert.Equal(t, 1, a.Len().Value())
}

func TestCellArrayReplaceAll(t *testing.T) {
	a := stream.NewCellArray(1, 2, 3)
	first := a.Items()[0]
	r := recordArray(a)
	defer r.Stop()
	r.Reset()

	a.ReplaceAll([]int{4, 5}, nil)
	assert.Equal(t, 2, a.Len().Value())
	assert.Equal(t, []int{4, 5}, a.Values().Value())
	assertEvents(t, []ev{rem(2)}, r.Events())
	assert.Same(t, first, a.Items()[0])
	assert.Equal(t, 4, first.Value())

	r.Reset()
	a.ReplaceAll([]int{4, 6, 7, 8}, nil)
	assert.Equal(t, []int{4, 6, 7, 8}, a.Values().Value())
	assertEvents(t, []ev{ins(2), ins(3)}, r.Events())
}

func TestCellArrayReplaceAllPredicate(t *testing.T) {
	a := stream.NewCellArray(1, 2, 3)
	writes := 0
	for _, item := range a.Items() {
		item.ObserveFunc(func(int) {
			writes++
		})
	}

	a.ReplaceAll([]int{1, 20, 3}, func(old, new int) bool {
		return old != new
	})
	assert.Equal(t, []int{1, 20, 3}, a.Values().Value())
	assert.Equal(t, 1, writes)
}

func TestCellArrayPositionalAccess(t *testing.T) {
	a := stream.NewCellArray(1, 2, 3)

	v, ok := a.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = a.Get(3)
	assert.False(t, ok)

	item := a.Items()[1]
	var got []int
	stop := item.ObserveFunc(func(v int) {
		got = append(got, v)
	})
	defer stop()

	require.NoError(t, a.Set(1, 20))
	assert.True(t, a.Update(1, func(v *int) { *v++ }))
	assert.Equal(t, []int{20, 21}, got)

	assert.False(t, a.Update(5, func(v *int) { *v++ }))
	err := a.Set(3, 9)
	assert.ErrorIs(t, err, stream.ErrIndexOutOfRange)
	assert.ErrorIs(t, a.Set(-1, 9), stream.ErrIndexOutOfRange)
	assert.ErrorIs(t, a.Insert(4, 9), stream.ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 21, 3}, a.Values().Value())
}

func TestCellArrayValuesCell(t *testing.T) {
	a := stream.NewCellArray(1, 2)
	var got [][]int
	stop := a.Values().ObserveFunc(func(v []int) {
		got = append(got, v)
	})

	a.Push(3)
	require.NoError(t, a.Set(0, 10))
	removed := a.Items()[2]
	a.Remove(2)
	removed.Set(99)
	assert.Equal(t, [][]int{{1, 2, 3}, {10, 2, 3}, {10, 2}}, got)

	stop()
	assert.Equal(t, 0, a.Cell().ObserverCount())
	for _, item := range a.Items() {
		assert.Equal(t, 0, item.ObserverCount())
	}
}

func TestCellArrayClearAndAll(t *testing.T) {
	a := stream.NewCellArray("a", "b", "c")
	var collected []string
	for i, v := range a.All() {
		if i == 2 {
			break
		}
		collected = append(collected, v)
	}
	assert.Equal(t, []string{"a", "b"}, collected)

	r := recordArray(a)
	defer r.Stop()
	r.Reset()
	a.Clear()
	assertEvents(t, []ev{rem(2), rem(1), rem(0)}, r.Events())
	assert.Empty(t, r.Values())
	assert.Equal(t, 0, a.Len().Value())
}

// should give a late subscriber the same state as an early one
func TestCellArrayLateSubscriber(t *testing.T) {
	a := stream.NewCellArray(1)
	early := recordArray(a)
	defer early.Stop()

	a.Push(2)
	require.NoError(t, a.Insert(0, 0))
	a.Remove(1)

	late := recordArray(a)
	defer late.Stop()
	assert.Equal(t, early.Values(), late.Values())
	assert.Equal(t, early.Keys(), late.Keys())
	assertEvents(t, []ev{ins(0), ins(1)}, late.Events())
}
