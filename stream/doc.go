// Package stream provides ordered collections of cells that are observed
// incrementally.
//
// Instead of snapshots, a Stream reports structural events: insert(index,
// item, key) and remove(index). Subscribing replays an insert for every
// current entry, so a renderer can build its view from the events alone and
// then patch it as they arrive.
//
// CellArray and CellMap are the mutable sources. Map, MapKey, Filter and
// Indexed derive new streams from existing ones; each subscription to a
// derived stream subscribes to its source and keeps its own bookkeeping.
package stream

import (
	"log/slog"

	"github.com/delaneyj/cellparty/cell"
)

func logger() *slog.Logger {
	return cell.Logger()
}
