package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTransactions encodes named transactions through a fresh catalog
func buildTransactions(rows [][]string) (*ItemCatalog, *TransactionSet) {
	catalog := NewItemCatalog()
	ts := NewTransactionSet()
	for _, row := range rows {
		ids := make([]int, 0, len(row))
		for _, name := range row {
			ids = append(ids, catalog.Resolve(name))
		}
		ts.Add(ids)
	}
	return catalog, ts
}

func itemsetOf(t *testing.T, catalog *ItemCatalog, names ...string) Itemset {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, ok := catalog.lookup(name)
		require.True(t, ok, "unknown item %v", name)
		ids = append(ids, id)
	}
	return NewItemset(ids...)
}

func TestSeedCountsSinglesAndPairs(t *testing.T) {
	catalog, ts := buildTransactions([][]string{{"a", "b"}, {"a", "b", "c"}, {"a"}, {"b", "c"}})
	table := Seed(ts)

	require.Equal(t, 3, table.Count(itemsetOf(t, catalog, "a")))
	require.Equal(t, 3, table.Count(itemsetOf(t, catalog, "b")))
	require.Equal(t, 2, table.Count(itemsetOf(t, catalog, "c")))
	require.Equal(t, 2, table.Count(itemsetOf(t, catalog, "a", "b")))
	require.Equal(t, 2, table.Count(itemsetOf(t, catalog, "b", "c")))
	require.Equal(t, 1, table.Count(itemsetOf(t, catalog, "a", "c")))

	require.Equal(t, 3, table.Level(1).Len())
	require.Equal(t, 3, table.Level(2).Len())
	for _, entry := range table.Level(2).Entries() {
		require.Equal(t, 2, entry.Items.Size())
	}
}

func TestSeedDuplicateItemsCountOnce(t *testing.T) {
	catalog, ts := buildTransactions([][]string{{"a", "a", "b"}})
	table := Seed(ts)
	require.Equal(t, 1, table.Count(itemsetOf(t, catalog, "a")))
	require.Equal(t, 1, table.Count(itemsetOf(t, catalog, "a", "b")))
	require.Equal(t, 3, table.Len())
}

func TestSupportTableFilter(t *testing.T) {
	table := NewSupportTable()
	table.Add(Itemset{0}, 2)
	table.Add(Itemset{0}, 1)
	table.Add(Itemset{4}, 1)
	table.Add(Itemset{1}, 5)
	table.Set(Itemset{2}, 0)
	require.Equal(t, 3, table.Count(Itemset{0}))
	require.Equal(t, 0, table.Count(Itemset{3}))

	filtered := table.Filter(func(count int) bool { return count >= 2 })
	require.Equal(t, 2, filtered.Len())
	require.Equal(t, 4, table.Len(), "filter must not modify the source table")

	entries := table.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, Itemset{0}, entries[0].Items)
	assert.Equal(t, Itemset{4}, entries[3].Items)
}

func TestCountersAgree(t *testing.T) {
	catalog, ts := buildTransactions([][]string{
		{"a", "b", "c", "d"},
		{"a", "b", "c"},
		{"a", "c", "d"},
		{"b", "c", "d"},
		{"a", "b", "d"},
		{"c"},
	})
	candidates := []Itemset{
		itemsetOf(t, catalog, "a", "b", "c"),
		itemsetOf(t, catalog, "a", "c", "d"),
		itemsetOf(t, catalog, "b", "c", "d"),
		itemsetOf(t, catalog, "a", "b", "c", "d"),
		itemsetOf(t, catalog, "c"),
	}
	expected := []int{2, 2, 2, 1, 5}

	for _, name := range Counters {
		counter, err := NewCounter(name)
		require.Nil(t, err)
		table := counter.Count(ts, candidates)
		for i, c := range candidates {
			require.Equal(t, expected[i], table.Count(c), "counter %v candidate %v", name, c)
		}
	}
}

func TestCounterKeepsUnsupportedCandidates(t *testing.T) {
	catalog, ts := buildTransactions([][]string{{"a", "b"}, {"c"}})
	abc := itemsetOf(t, catalog, "a", "b", "c")
	for _, name := range Counters {
		counter, err := NewCounter(name)
		require.Nil(t, err)
		table := counter.Count(ts, []Itemset{abc})
		require.Equal(t, 1, table.Len(), "unsupported candidates keep a zero entry")
		require.Equal(t, 0, table.Count(abc))
	}
}

func TestNewCounterUnknown(t *testing.T) {
	_, err := NewCounter("gpu")
	require.ErrorIs(t, err, ErrUnknownCounter)

	counter, err := NewCounter("")
	require.Nil(t, err)
	require.IsType(t, tidsetCounter{}, counter)
}
