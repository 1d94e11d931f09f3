package mining

import (
	"github.com/RoaringBitmap/roaring"
)

// TransactionSet is the encoded dataset. Besides the row view (one sorted
// itemset per transaction) it keeps a columnar index from item to the
// bitmap of transactions containing it.
type TransactionSet struct {
	rows    []Itemset
	tidsets []*roaring.Bitmap
}

// NewTransactionSet returns an empty transaction set
func NewTransactionSet() *TransactionSet {
	return &TransactionSet{
		rows:    make([]Itemset, 0),
		tidsets: make([]*roaring.Bitmap, 0),
	}
}

// Add appends a transaction made of ids. Duplicate ids are collapsed.
// An empty id list is still a transaction: it supports no itemset but
// counts in the support denominator.
func (t *TransactionSet) Add(ids []int) {
	row := NewItemset(ids...)
	tid := uint32(len(t.rows))
	t.rows = append(t.rows, row)
	for _, id := range row {
		for id >= len(t.tidsets) {
			t.tidsets = append(t.tidsets, roaring.New())
		}
		t.tidsets[id].Add(tid)
	}
}

// Len returns the number of transactions
func (t *TransactionSet) Len() int {
	return len(t.rows)
}

// Each calls fn for every transaction in load order
func (t *TransactionSet) Each(fn func(tid int, row Itemset)) {
	for tid, row := range t.rows {
		fn(tid, row)
	}
}

// Tidset returns the bitmap of transactions containing item.
// The returned bitmap must not be modified.
func (t *TransactionSet) Tidset(item int) *roaring.Bitmap {
	if item < 0 || item >= len(t.tidsets) {
		return roaring.New()
	}
	return t.tidsets[item]
}
