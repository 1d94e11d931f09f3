package mining

import (
	"sort"

	"github.com/projectdiscovery/apriori/internal/dedupe"
)

// MaxInMemoryCandidates is the estimated number of joins above which
// candidates are deduped in a disk backed store (default: 4M)
var MaxInMemoryCandidates = 4 * 1024 * 1024

// newBackend creates the store used to dedupe joined candidates
var newBackend = dedupe.New

// CandidateOptions tunes candidate generation
type CandidateOptions struct {
	// Prune drops candidates having a k-subset that is not frequent
	Prune bool
	// MaxInMemory overrides MaxInMemoryCandidates when > 0
	MaxInMemory int
}

// GenerateCandidates joins frequent k-itemsets sharing their first k-1 items
// into distinct (k+1)-itemsets. The result is sorted.
func GenerateCandidates(frequent []Itemset, opts *CandidateOptions) ([]Itemset, error) {
	if opts == nil {
		opts = &CandidateOptions{}
	}
	if len(frequent) < 2 {
		return []Itemset{}, nil
	}
	k := frequent[0].Size()

	sorted := make([]Itemset, len(frequent))
	copy(sorted, frequent)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	maxInMemory := MaxInMemoryCandidates
	if opts.MaxInMemory > 0 {
		maxInMemory = opts.MaxInMemory
	}
	backend, err := newBackend(estimateJoins(sorted, k), maxInMemory)
	if err != nil {
		return nil, err
	}
	defer backend.Cleanup()

	var known map[Key]struct{}
	if opts.Prune {
		known = make(map[Key]struct{}, len(sorted))
		for _, items := range sorted {
			known[items.Key()] = struct{}{}
		}
	}

	// itemsets sharing a (k-1)-prefix are contiguous once sorted
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted) && sorted[i].SharesPrefix(sorted[j], k-1); j++ {
			candidate := sorted[i].Union(sorted[j])
			if candidate.Size() != k+1 {
				continue
			}
			if opts.Prune && !allSubsetsKnown(candidate, known) {
				continue
			}
			if err := backend.Upsert(string(candidate.Key())); err != nil {
				return nil, err
			}
		}
	}

	candidates := make([]Itemset, 0)
	err = backend.IterCallback(func(key string) {
		candidates = append(candidates, Key(key).Itemset())
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})
	return candidates, nil
}

// allSubsetsKnown checks every k-subset of candidate against the frequent set.
// The two subsets dropping one of the last two items are the joined parents
// and are skipped.
func allSubsetsKnown(candidate Itemset, known map[Key]struct{}) bool {
	for i := 0; i < candidate.Size()-2; i++ {
		if _, ok := known[candidate.Without(i).Key()]; !ok {
			return false
		}
	}
	return true
}

// estimateJoins returns number of pairs sharing a prefix
func estimateJoins(sorted []Itemset, k int) int {
	total := 0
	group := 1
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i].SharesPrefix(sorted[i-1], k-1) {
			group++
			continue
		}
		total += group * (group - 1) / 2
		group = 1
	}
	return total
}
