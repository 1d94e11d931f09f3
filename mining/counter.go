package mining

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
)

const (
	// CounterScan tests every candidate against every raw transaction
	CounterScan = "scan"
	// CounterTidset intersects per item transaction bitmaps
	CounterTidset = "tidset"
)

// Counters lists the available support counting strategies
var Counters = []string{CounterTidset, CounterScan}

// Counter computes the support counts of candidates with respect to the
// raw transaction database.
type Counter interface {
	Count(ts *TransactionSet, candidates []Itemset) *SupportTable
}

// NewCounter returns the counter registered under name
func NewCounter(name string) (Counter, error) {
	switch strings.ToLower(name) {
	case "", CounterTidset:
		return tidsetCounter{}, nil
	case CounterScan:
		return scanCounter{}, nil
	}
	return nil, ErrUnknownCounter
}

type scanCounter struct{}

// Count scans each transaction once and increments every candidate it contains.
func (scanCounter) Count(ts *TransactionSet, candidates []Itemset) *SupportTable {
	table := NewSupportTable()
	for _, c := range candidates {
		table.Set(c, 0)
	}
	ts.Each(func(_ int, row Itemset) {
		for _, c := range candidates {
			if c.SubsetOf(row) {
				table.Add(c, 1)
			}
		}
	})
	return table
}

type tidsetCounter struct{}

// Count takes the cardinality of the intersection of the candidate items' tidsets.
func (tidsetCounter) Count(ts *TransactionSet, candidates []Itemset) *SupportTable {
	table := NewSupportTable()
	for _, c := range candidates {
		table.Set(c, tidsetSupport(ts, c))
	}
	return table
}

func tidsetSupport(ts *TransactionSet, items Itemset) int {
	switch len(items) {
	case 0:
		return ts.Len()
	case 1:
		return int(ts.Tidset(items[0]).GetCardinality())
	case 2:
		return int(ts.Tidset(items[0]).AndCardinality(ts.Tidset(items[1])))
	}
	bitmaps := make([]*roaring.Bitmap, 0, len(items))
	for _, id := range items {
		bitmaps = append(bitmaps, ts.Tidset(id))
	}
	return int(roaring.FastAnd(bitmaps...).GetCardinality())
}
