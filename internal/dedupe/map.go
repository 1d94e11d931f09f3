package dedupe

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend(sizeHint int) *MapBackend {
	return &MapBackend{storage: make(map[string]struct{}, sizeHint)}
}

func (m *MapBackend) Upsert(key string) error {
	m.storage[key] = struct{}{}
	return nil
}

func (m *MapBackend) IterCallback(callback func(key string)) error {
	for k := range m.storage {
		callback(k)
	}
	return nil
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
}
