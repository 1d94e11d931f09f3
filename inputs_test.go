package apriori

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/apriori/mining"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testcases := []struct {
		line     string
		expected []string
	}{
		{line: "milk,bread", expected: []string{"milk", "bread"}},
		{line: " milk , bread ,, ", expected: []string{"milk", "bread"}},
		{line: "milk,milk,eggs", expected: []string{"milk", "eggs"}},
		{line: "whole milk,soda", expected: []string{"whole milk", "soda"}},
	}
	for _, v := range testcases {
		require.Equal(t, v.expected, Tokenize(v.line, ","), "line %q", v.line)
	}
	require.Empty(t, Tokenize(" , ,", ","))
	require.Equal(t, []string{"a", "b"}, Tokenize("a;b", ";"))
}

func TestReadTransactions(t *testing.T) {
	input := "a,b\n\na,b,c\n   \na\n,,\nb,c\n"
	d, err := ReadTransactions(strings.NewReader(input), nil)
	require.Nil(t, err)
	require.Equal(t, 5, d.Transactions.Len(), "blank lines are not transactions")
	require.Equal(t, 1, d.Empty)
	require.Equal(t, 3, d.Catalog.Len())

	// ids are assigned in first seen order
	require.Equal(t, "a", d.Catalog.NameOf(0))
	require.Equal(t, "b", d.Catalog.NameOf(1))
	require.Equal(t, "c", d.Catalog.NameOf(2))

	rows := []mining.Itemset{}
	d.Transactions.Each(func(_ int, row mining.Itemset) {
		rows = append(rows, row)
	})
	require.Equal(t, []mining.Itemset{{0, 1}, {0, 1, 2}, {0}, {}, {1, 2}}, rows)
}

func TestReadTransactionsKeepsOptions(t *testing.T) {
	opts := &ReadOptions{Separator: ";"}
	_, err := ReadTransactions(strings.NewReader("a;b\n"), opts)
	require.Nil(t, err)
	require.Equal(t, ReadOptions{Separator: ";"}, *opts, "caller options must not be modified")
}

func TestReadTransactionsEmpty(t *testing.T) {
	d, err := ReadTransactions(strings.NewReader("\n\n"), nil)
	require.Nil(t, err)
	require.Equal(t, 0, d.Transactions.Len())
}

func TestReadTransactionsLineTooLong(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader(strings.Repeat("a", 64)+"\n"), &ReadOptions{MaxLineSize: 16})
	require.ErrorIs(t, err, ErrInputAccess)
}

func TestReadTransactionsFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "tx.csv")
	require.Nil(t, os.WriteFile(plain, []byte("x,y\ny,z\n"), 0644))
	d, err := ReadTransactionsFile(plain, nil)
	require.Nil(t, err)
	require.Equal(t, 2, d.Transactions.Len())

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write([]byte("x,y\ny,z\nx\n"))
	require.Nil(t, err)
	require.Nil(t, gz.Close())
	compressed := filepath.Join(dir, "tx.csv.gz")
	require.Nil(t, os.WriteFile(compressed, buf.Bytes(), 0644))
	d, err = ReadTransactionsFile(compressed, nil)
	require.Nil(t, err)
	require.Equal(t, 3, d.Transactions.Len())

	_, err = ReadTransactionsFile(filepath.Join(dir, "missing.csv"), nil)
	require.ErrorIs(t, err, ErrInputAccess)
}

func TestNewDataset(t *testing.T) {
	d := NewDataset([][]string{{"a", " b "}, {}, {" "}, {"b"}})
	require.Equal(t, 4, d.Transactions.Len())
	require.Equal(t, 2, d.Empty)
	require.Equal(t, 2, d.Catalog.Len())
}
