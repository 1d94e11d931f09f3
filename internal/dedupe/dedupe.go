// Package dedupe collapses duplicate keys produced while generating
// candidate itemsets. Small inputs are deduped in memory, large ones
// spill to a hybrid (memory + disk) map.
package dedupe

// Backend stores unique keys
type Backend interface {
	// Upsert add/update key to backend/database
	Upsert(key string) error
	// IterCallback executes callback on each unique key while iterating
	IterCallback(callback func(key string)) error
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// New returns a map backend when estimate fits in maxInMemory,
// otherwise a hybrid backend
func New(estimate, maxInMemory int) (Backend, error) {
	if estimate <= maxInMemory {
		return NewMapBackend(estimate), nil
	}
	return NewHybridBackend()
}
