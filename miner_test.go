package apriori

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/projectdiscovery/apriori/mining"
	"github.com/stretchr/testify/require"
)

const groceries = `a,b
a,b,c
a
b,c
`

func TestMinerResults(t *testing.T) {
	m, err := New(&Options{Input: strings.NewReader(groceries), MinSupport: 0.5})
	require.Nil(t, err)

	result, err := m.Mine(context.Background())
	require.Nil(t, err)
	require.Equal(t, 4, result.Transactions)
	require.Equal(t, 3, result.Items)
	require.Len(t, result.Levels, 2)
	require.Equal(t, []Itemset{
		{Items: []string{"a", "b"}, Count: 2, Support: 0.5},
		{Items: []string{"b", "c"}, Count: 2, Support: 0.5},
	}, result.Levels[1].Itemsets)
}

func TestMinerExecuteWithWriter(t *testing.T) {
	m, err := New(&Options{Input: strings.NewReader(groceries), MinSupport: 0.5})
	require.Nil(t, err)
	var buff bytes.Buffer
	require.Nil(t, m.ExecuteWithWriter(&buff))
	expected := "[c]\t0.5\n[a]\t0.75\n[b]\t0.75\n\n[a, b]\t0.5\n[b, c]\t0.5\n\n"
	require.Equal(t, expected, buff.String())

	require.NotNil(t, m.ExecuteWithWriter(nil))
}

func TestMinerExecute(t *testing.T) {
	m, err := New(&Options{Transactions: [][]string{{"x", "y", "z"}}, MinSupport: 1})
	require.Nil(t, err)
	sizes := []int{}
	for level := range m.Execute(context.Background()) {
		sizes = append(sizes, level.K)
	}
	require.Equal(t, []int{1, 2, 3}, sizes)
	require.Nil(t, m.Err())
}

func TestMinerExecuteCanceled(t *testing.T) {
	m, err := New(&Options{Transactions: [][]string{{"x", "y", "z"}}, MinSupport: 1})
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for range m.Execute(ctx) {
	}
	require.ErrorIs(t, m.Err(), context.Canceled, "a truncated run must be reported")
}

func TestMinerEmptyTransactions(t *testing.T) {
	m, err := New(&Options{Input: strings.NewReader("a\n,,\n"), MinSupport: 0.5})
	require.Nil(t, err)
	require.Equal(t, 1, m.Dataset.Empty)

	result, err := m.Mine(context.Background())
	require.Nil(t, err)
	require.Equal(t, 2, result.Transactions, "item-less lines are transactions")
	require.Equal(t, []Itemset{{Items: []string{"a"}, Count: 1, Support: 0.5}}, result.Levels[0].Itemsets)
}

func TestMinerErrors(t *testing.T) {
	_, err := New(&Options{})
	require.NotNil(t, err, "missing input must fail")

	_, err = New(&Options{Input: strings.NewReader("\n\n"), MinSupport: 0.5})
	require.ErrorIs(t, err, mining.ErrEmptyDataset)

	_, err = New(&Options{Input: strings.NewReader(groceries), MinSupport: 1.5})
	require.ErrorIs(t, err, mining.ErrInvalidThreshold)

	_, err = New(&Options{Input: strings.NewReader(groceries), Format: "csv"})
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestMinerDefaults(t *testing.T) {
	m, err := New(&Options{Transactions: [][]string{{"a"}}})
	require.Nil(t, err)
	require.Equal(t, DefaultConfig.MinSupport, m.Options.MinSupport)
	require.Equal(t, DefaultSeparator, m.Options.Separator)
	require.Equal(t, mining.CounterTidset, m.Options.Counter)
}

func TestMinerSeparator(t *testing.T) {
	m, err := New(&Options{Input: strings.NewReader("a b\na b\n"), Separator: " ", MinSupport: 1, Counter: mining.CounterScan})
	require.Nil(t, err)
	result, err := m.Mine(context.Background())
	require.Nil(t, err)
	require.Len(t, result.Levels, 2)
	require.Equal(t, []string{"a", "b"}, result.Levels[1].Itemsets[0].Items)
}
