// Package cell provides reactive values ("cells") and the derivations built
// on them.
//
// A cell answers Value() synchronously at any time and pushes every change to
// its observers. The two views always agree: after a notification, Value()
// returns what was delivered.
//
// # Kinds
//
//	count := cell.New(1)                         // mutable root
//	double := cell.Map(count, func(n int) int {  // derived
//		return n * 2
//	})
//	stop := double.ObserveFunc(func(n int) { fmt.Println(n) })
//	count.Set(2) // prints 4
//	stop()
//
// Derived cells (Map, MapDefined, FlatMap, Zip*, Computed, Bimap, Lens) are
// lazy about their sources: they subscribe upstream when their first observer
// arrives and release every upstream subscription when the last one leaves.
// An unobserved derived cell holds no subscriptions and can be collected.
//
// # Propagation
//
// Everything runs synchronously on the caller's goroutine and nothing is
// batched. Writing two sources of the same Zip or Computed cell one after the
// other notifies its observers twice, once per write. The dependency graph is
// not checked for cycles; a callback that writes a cell upstream of itself
// makes that cell re-enter its own notification, and once one cell is nested
// inside itself more than MaxNotifyDepth times a *DepthError panic stops it.
// Chains of distinct cells may be arbitrarily deep.
//
// FlatMap notifies once per switch of its intermediate cell. When the
// intermediate is itself derived from FlatMap's source, one write to the
// source reaches FlatMap's observers twice: once through the old intermediate
// and once through the switch.
//
// Cells are not safe for concurrent use.
package cell
