package apriori

import (
	"context"
	"io"

	"github.com/projectdiscovery/apriori/mining"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
)

// Miner Options
type Options struct {
	// Input is read line by line, one transaction per line
	Input io.Reader
	// Transactions are used as-is when Input is nil
	Transactions [][]string
	// Dataset is an already encoded input, it takes precedence over Input and Transactions
	Dataset *Dataset
	// Separator between item names (default ",")
	Separator string
	// MinSupport is the minimum fraction of transactions in (0, 1]
	// if zero DefaultConfig.MinSupport is used
	MinSupport float64
	// MaxLevel stops after itemsets of this size (0 = no limit)
	MaxLevel int
	// Counter selects support counting: tidset or scan
	Counter string
	// DisablePrune turns off subset pruning of candidates
	DisablePrune bool
	// Format of ExecuteWithWriter output: text, json or yaml
	Format string
	// Template overrides Format with a per itemset template
	Template string
}

// Result of a complete mining run
type Result struct {
	Transactions int
	Items        int
	Levels       []*Level
}

// Miner
type Miner struct {
	Options *Options
	Dataset *Dataset
	engine  *mining.Engine
	err     error
}

// New reads the input and returns a miner ready to execute
func New(opts *Options) (*Miner, error) {
	if opts.Dataset == nil && opts.Input == nil && len(opts.Transactions) == 0 {
		return nil, errkit.New("no input provided to mine")
	}
	DefaultConfig.Apply(opts)

	// fail on a bad output setup before reading the input
	if _, err := NewWriter(io.Discard, &OutputOptions{Format: opts.Format, Template: opts.Template}); err != nil {
		return nil, err
	}

	dataset, err := loadDataset(opts)
	if err != nil {
		return nil, err
	}
	if dataset.Empty > 0 {
		gologger.Warning().Msgf("%v transactions without items, they still count towards support", dataset.Empty)
	}
	gologger.Info().Msgf("Loaded %v transactions with %v distinct items", dataset.Transactions.Len(), dataset.Catalog.Len())

	engine, err := mining.NewEngine(dataset.Transactions, &mining.Options{
		MinSupport:   opts.MinSupport,
		MaxLevel:     opts.MaxLevel,
		Counter:      opts.Counter,
		DisablePrune: opts.DisablePrune,
	})
	if err != nil {
		return nil, err
	}
	return &Miner{
		Options: opts,
		Dataset: dataset,
		engine:  engine,
	}, nil
}

func loadDataset(opts *Options) (*Dataset, error) {
	if opts.Dataset != nil {
		return opts.Dataset, nil
	}
	if opts.Input != nil {
		return ReadTransactions(opts.Input, &ReadOptions{Separator: opts.Separator})
	}
	return NewDataset(opts.Transactions), nil
}

// Execute mines all levels and sends them to the returned channel
// in increasing itemset size. Once the channel is closed Err reports
// whether the run stopped early.
func (m *Miner) Execute(ctx context.Context) <-chan *Level {
	results := make(chan *Level)
	m.err = nil
	go func() {
		defer close(results)
		err := m.engine.Run(ctx, func(level *mining.Level) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case results <- m.resolve(level):
				return nil
			}
		})
		if err != nil {
			gologger.Error().Msgf("mining stopped: %v", err)
		}
		m.err = err
	}()
	return results
}

// Err returns the error that stopped the last Execute run, nil if it completed.
// It must be called after the Execute channel is closed.
func (m *Miner) Err() error {
	return m.err
}

// Mine runs to completion and returns every level
func (m *Miner) Mine(ctx context.Context) (*Result, error) {
	result := &Result{
		Transactions: m.Dataset.Transactions.Len(),
		Items:        m.Dataset.Catalog.Len(),
		Levels:       make([]*Level, 0),
	}
	err := m.engine.Run(ctx, func(level *mining.Level) error {
		result.Levels = append(result.Levels, m.resolve(level))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteWithWriter mines and renders every level to writer using Options.Format
func (m *Miner) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errkit.New("writer destination cannot be nil")
	}
	rw, err := NewWriter(writer, &OutputOptions{Format: m.Options.Format, Template: m.Options.Template})
	if err != nil {
		return err
	}
	levels, itemsets := 0, 0
	err = m.engine.Run(context.Background(), func(level *mining.Level) error {
		levels++
		itemsets += len(level.Itemsets)
		return rw.WriteLevel(m.resolve(level))
	})
	if err != nil {
		return err
	}
	gologger.Info().Msgf("Found %v frequent itemsets in %v levels", itemsets, levels)
	return nil
}

// resolve converts ids of a mined level to item names
func (m *Miner) resolve(level *mining.Level) *Level {
	out := &Level{K: level.K, Itemsets: make([]Itemset, 0, len(level.Itemsets))}
	for _, fi := range level.Itemsets {
		out.Itemsets = append(out.Itemsets, Itemset{
			Items:   m.Dataset.Catalog.Names(fi.Items),
			Count:   fi.Count,
			Support: fi.Support,
		})
	}
	return out
}
