package mining

/// Jargons & Definitions
/// for transactions {a,b} {a,b,c} {a} {b,c}
// item = a single name, encoded as a dense id (a=0, b=1, c=2)
// k-itemset = sorted set of k ids, ex: {0,1} is a 2-itemset
// count = number of transactions containing the itemset, {0,1} => 2
// support = count / number of transactions, {0,1} => 0.5
// level k = all frequent k-itemsets

import (
	"context"
	"math"
	"sort"

	"github.com/projectdiscovery/gologger"
)

// Options of the mining engine
type Options struct {
	// MinSupport is the minimum fraction of transactions an itemset
	// must appear in to be reported, in (0, 1]
	MinSupport float64
	// MaxLevel stops mining after the given itemset size (0 = no limit)
	MaxLevel int
	// Counter is the support counting strategy (tidset or scan)
	Counter string
	// DisablePrune disables subset pruning of candidates
	DisablePrune bool
	// MaxInMemoryCandidates overrides MaxInMemoryCandidates when > 0
	MaxInMemoryCandidates int
}

// ValidateThreshold checks that minSup is in (0, 1]
func ValidateThreshold(minSup float64) error {
	if math.IsNaN(minSup) || minSup <= 0 || minSup > 1 {
		return ErrInvalidThreshold
	}
	return nil
}

// FrequentItemset is an itemset that met the support threshold
type FrequentItemset struct {
	Items   Itemset
	Count   int
	Support float64
}

// Level contains all frequent itemsets of size K ordered by ascending support
type Level struct {
	K        int
	Itemsets []FrequentItemset
}

// Empty reports whether no itemset of this size is frequent
func (l *Level) Empty() bool {
	return len(l.Itemsets) == 0
}

// Engine runs the Apriori level-wise search over a transaction set
type Engine struct {
	transactions *TransactionSet
	options      *Options
	counter      Counter
	total        float64
}

// NewEngine validates options and dataset and returns an engine
func NewEngine(ts *TransactionSet, opts *Options) (*Engine, error) {
	if err := ValidateThreshold(opts.MinSupport); err != nil {
		return nil, err
	}
	if ts == nil || ts.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	counter, err := NewCounter(opts.Counter)
	if err != nil {
		return nil, err
	}
	return &Engine{
		transactions: ts,
		options:      opts,
		counter:      counter,
		total:        float64(ts.Len()),
	}, nil
}

// Support returns count as a fraction of all transactions
func (e *Engine) Support(count int) float64 {
	return float64(count) / e.total
}

func (e *Engine) frequent(count int) bool {
	return e.Support(count) >= e.options.MinSupport
}

// Run executes the level-wise search and calls emit once per visited level,
// in increasing size order. Only level 1 can be emitted empty.
func (e *Engine) Run(ctx context.Context, emit func(level *Level) error) error {
	// seeding pass counts singletons and pairs at once
	seeded := Seed(e.transactions)
	table := seeded.Level(1)

	for k := 1; ; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		frequent := table.Filter(e.frequent)
		level := e.newLevel(k, frequent)
		gologger.Verbose().Msgf("level %d: %d frequent itemsets", k, len(level.Itemsets))
		if err := emit(level); err != nil {
			return err
		}
		if level.Empty() || (e.options.MaxLevel > 0 && k >= e.options.MaxLevel) {
			return nil
		}

		var next *SupportTable
		if k == 1 {
			next = seeded.Level(2)
			seeded = nil
		} else {
			counted, err := e.countCandidates(level)
			if err != nil {
				return err
			}
			next = counted
		}
		table = next.Filter(e.frequent)
		if table.Len() == 0 {
			return nil
		}
	}
}

// Levels runs the search and returns every emitted level
func (e *Engine) Levels(ctx context.Context) ([]*Level, error) {
	levels := make([]*Level, 0)
	err := e.Run(ctx, func(level *Level) error {
		levels = append(levels, level)
		return nil
	})
	return levels, err
}

// countCandidates builds (k+1)-candidates from a level and counts them
// against the raw transactions
func (e *Engine) countCandidates(level *Level) (*SupportTable, error) {
	itemsets := make([]Itemset, 0, len(level.Itemsets))
	for _, fi := range level.Itemsets {
		itemsets = append(itemsets, fi.Items)
	}
	candidates, err := GenerateCandidates(itemsets, &CandidateOptions{
		Prune:       !e.options.DisablePrune,
		MaxInMemory: e.options.MaxInMemoryCandidates,
	})
	if err != nil {
		return nil, err
	}
	gologger.Debug().Msgf("level %d: counting %d candidates", level.K+1, len(candidates))
	return e.counter.Count(e.transactions, candidates), nil
}

func (e *Engine) newLevel(k int, table *SupportTable) *Level {
	entries := table.Entries()
	level := &Level{K: k, Itemsets: make([]FrequentItemset, 0, len(entries))}
	for _, entry := range entries {
		level.Itemsets = append(level.Itemsets, FrequentItemset{
			Items:   entry.Items,
			Count:   entry.Count,
			Support: e.Support(entry.Count),
		})
	}
	// entries are sorted by itemset so ties keep a deterministic order
	sort.SliceStable(level.Itemsets, func(i, j int) bool {
		return level.Itemsets[i].Count < level.Itemsets[j].Count
	})
	return level
}
