// SPDX-License-Identifier: MIT

package spatial

import (
	"errors"
	"sort"

	"github.com/peterstace/simplefeatures/rtree"
	"github.com/twpayne/go-geom"
)

// ErrLengthMismatch is returned by BulkLoad when bounds and items differ in length.
var ErrLengthMismatch = errors.New("spatial: bounds and items differ in length")

// Index maps envelopes to items. The zero value is not usable; use New or BulkLoad.
//
// The packed tree is immutable, so Insert only records the entry and the
// tree is rebuilt on the next Query.
type Index[T any] struct {
	tree  *rtree.RTree // nil when entries changed since the last build
	bulk  []rtree.BulkItem
	items []T
}

// New returns an empty Index.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// BulkLoad builds an Index from parallel slices of envelopes and items.
func BulkLoad[T any](bounds []*geom.Bounds, items []T) (*Index[T], error) {
	if len(bounds) != len(items) {
		return nil, ErrLengthMismatch
	}
	bulk := make([]rtree.BulkItem, len(items))
	for i, b := range bounds {
		bulk[i] = rtree.BulkItem{Box: Box(b), RecordID: i}
	}
	stored := make([]T, len(items))
	copy(stored, items)

	ix := &Index[T]{bulk: bulk, items: stored}
	ix.build()

	return ix, nil
}

// Insert adds item under envelope b. Prefer BulkLoad when all entries are
// known up front.
func (ix *Index[T]) Insert(b *geom.Bounds, item T) {
	ix.bulk = append(ix.bulk, rtree.BulkItem{Box: Box(b), RecordID: len(ix.items)})
	ix.items = append(ix.items, item)
	ix.tree = nil
}

// Len returns the number of indexed items.
func (ix *Index[T]) Len() int { return len(ix.items) }

// Query returns every item whose envelope intersects b, in insertion order.
// Touching envelopes intersect.
func (ix *Index[T]) Query(b *geom.Bounds) []T {
	if len(ix.items) == 0 {
		return nil
	}
	if ix.tree == nil {
		ix.build()
	}

	var ids []int
	// The callback never fails, so neither does the search.
	_ = ix.tree.RangeSearch(Box(b), func(recordID int) error {
		ids = append(ids, recordID)
		return nil
	})
	sort.Ints(ids)

	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = ix.items[id]
	}
	return out
}

// build packs the recorded entries into a fresh tree. BulkLoad may reorder
// its argument, so it gets a copy.
func (ix *Index[T]) build() {
	bulk := make([]rtree.BulkItem, len(ix.bulk))
	copy(bulk, ix.bulk)
	ix.tree = rtree.BulkLoad(bulk)
}

// Box converts an XY envelope to an rtree.Box.
func Box(b *geom.Bounds) rtree.Box {
	return rtree.Box{
		MinX: b.Min(0),
		MinY: b.Min(1),
		MaxX: b.Max(0),
		MaxY: b.Max(1),
	}
}
