package apriori

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/apriori/mining"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
	fileutil "github.com/projectdiscovery/utils/file"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

var (
	// ErrInputAccess is returned when the transaction source cannot be read
	ErrInputAccess = errkit.New("could not read transactions")
)

const (
	// DefaultSeparator splits a line into item names
	DefaultSeparator = ","
	// DefaultMaxLineSize is the longest accepted transaction line (16 MB)
	DefaultMaxLineSize = 16 * 1024 * 1024
)

// ReadOptions controls how lines are turned into transactions
type ReadOptions struct {
	// Separator between item names on a line (default ",")
	Separator string
	// MaxLineSize is the maximum length of a single line in bytes
	MaxLineSize int
}

// withDefaults returns a copy of o with empty fields set to their defaults
func (o *ReadOptions) withDefaults() ReadOptions {
	out := ReadOptions{}
	if o != nil {
		out = *o
	}
	if out.Separator == "" {
		out.Separator = DefaultSeparator
	}
	if out.MaxLineSize <= 0 {
		out.MaxLineSize = DefaultMaxLineSize
	}
	return out
}

// Dataset is the encoded input: the item catalog and the transactions
type Dataset struct {
	Catalog      *mining.ItemCatalog
	Transactions *mining.TransactionSet
	// Empty counts non blank lines without a single valid item.
	// They are kept as empty transactions.
	Empty int
}

// Tokenize splits a line into trimmed, non empty, unique item names
func Tokenize(line, separator string) []string {
	tokens := make([]string, 0)
	for _, token := range strings.Split(line, separator) {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return sliceutil.Dedupe(tokens)
}

// NewDataset encodes in-memory transactions. A transaction without
// any valid item name is kept as an empty transaction.
func NewDataset(transactions [][]string) *Dataset {
	d := &Dataset{
		Catalog:      mining.NewItemCatalog(),
		Transactions: mining.NewTransactionSet(),
	}
	for _, tx := range transactions {
		if !d.add(tx) {
			d.Empty++
		}
	}
	return d
}

// add appends a transaction and reports whether it holds any item
func (d *Dataset) add(names []string) bool {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		ids = append(ids, d.Catalog.Resolve(name))
	}
	d.Transactions.Add(ids)
	return len(ids) > 0
}

// ReadTransactions reads one transaction per line from r.
// Blank lines are ignored and do not count as transactions.
func ReadTransactions(r io.Reader, opts *ReadOptions) (*Dataset, error) {
	cfg := opts.withDefaults()

	d := NewDataset(nil)
	scanner := bufio.NewScanner(r)
	// the scanner accepts tokens up to max(cap(buf), MaxLineSize)
	scanner.Buffer(make([]byte, 0, min(64*1024, cfg.MaxLineSize)), cfg.MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !d.add(Tokenize(line, cfg.Separator)) {
			d.Empty++
			gologger.Verbose().Msgf("line %d contains no items", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInputAccess, lineNo+1, err)
	}
	return d, nil
}

// ReadTransactionsFile reads transactions from a file,
// files ending with .gz are decompressed on the fly
func ReadTransactionsFile(path string, opts *ReadOptions) (*Dataset, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %v does not exist", ErrInputAccess, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputAccess, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrInputAccess, path, err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadTransactions(r, opts)
}
