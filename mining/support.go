package mining

import (
	"sort"
)

// SupportTable maps itemsets to the number of transactions containing them.
// A table handed between levels is treated as an immutable snapshot.
type SupportTable struct {
	counts map[Key]int
}

// NewSupportTable returns an empty table
func NewSupportTable() *SupportTable {
	return &SupportTable{counts: make(map[Key]int)}
}

// Add increments the count of items by n
func (s *SupportTable) Add(items Itemset, n int) {
	s.counts[items.Key()] += n
}

// Set stores count for items, replacing any previous value
func (s *SupportTable) Set(items Itemset, count int) {
	s.counts[items.Key()] = count
}

// Count returns the occurrence count of items (0 when absent)
func (s *SupportTable) Count(items Itemset) int {
	return s.counts[items.Key()]
}

// Len returns number of entries
func (s *SupportTable) Len() int {
	return len(s.counts)
}

// Entry is a single (itemset, count) row of a SupportTable
type Entry struct {
	Items Itemset
	Count int
}

// Level returns a new table holding only the entries of size k
func (s *SupportTable) Level(k int) *SupportTable {
	out := NewSupportTable()
	for key, count := range s.counts {
		if key.Itemset().Size() == k {
			out.counts[key] = count
		}
	}
	return out
}

// Filter returns a new table holding only the entries accepted by keep
func (s *SupportTable) Filter(keep func(count int) bool) *SupportTable {
	out := NewSupportTable()
	for key, count := range s.counts {
		if keep(count) {
			out.counts[key] = count
		}
	}
	return out
}

// Entries returns all rows sorted by itemset
func (s *SupportTable) Entries() []Entry {
	entries := make([]Entry, 0, len(s.counts))
	for key, count := range s.counts {
		entries = append(entries, Entry{Items: key.Itemset(), Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Items.Less(entries[j].Items)
	})
	return entries
}

// Seed counts every singleton and every pair of co-occurring items in a
// single pass over the transactions. The returned table covers sizes 1 and 2.
func Seed(ts *TransactionSet) *SupportTable {
	table := NewSupportTable()
	pair := make(Itemset, 2)
	ts.Each(func(_ int, row Itemset) {
		for i, a := range row {
			table.Add(Itemset{a}, 1)
			for _, b := range row[i+1:] {
				pair[0], pair[1] = a, b
				table.Add(pair, 1)
			}
		}
	})
	return table
}
