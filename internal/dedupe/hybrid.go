package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
	"github.com/projectdiscovery/utils/errkit"
)

// HybridBackend keeps keys in a hmap hybrid store backed by a temporary
// on-disk database
type HybridBackend struct {
	storage *hybrid.HybridMap
	// stored counts distinct keys, Scan does not report disk errors
	stored int
}

func NewHybridBackend() (*HybridBackend, error) {
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		return nil, errkit.Wrap(err, "dedupe: could not create hybrid store")
	}
	gologger.Verbose().Msgf("dedupe: using disk backed candidate store")
	return &HybridBackend{storage: db}, nil
}

func (h *HybridBackend) Upsert(key string) error {
	if _, ok := h.storage.Get(key); ok {
		return nil
	}
	if err := h.storage.Set(key, nil); err != nil {
		return errkit.Wrap(err, "dedupe: could not store candidate")
	}
	h.stored++
	return nil
}

func (h *HybridBackend) IterCallback(callback func(key string)) error {
	visited := 0
	h.storage.Scan(func(k, _ []byte) error {
		visited++
		callback(string(k))
		return nil
	})
	if visited != h.stored {
		return errkit.New("dedupe: scan returned %d of %d stored candidates", visited, h.stored)
	}
	return nil
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}
