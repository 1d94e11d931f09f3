package mining

// ItemCatalog maps item names to dense identifiers and back.
// Identifiers are assigned in first-seen order starting at 0 and
// are never reassigned.
type ItemCatalog struct {
	ids   map[string]int
	names []string
}

// NewItemCatalog returns an empty catalog
func NewItemCatalog() *ItemCatalog {
	return &ItemCatalog{
		ids:   make(map[string]int),
		names: make([]string, 0),
	}
}

// Resolve returns the identifier of name, assigning the next one if name is new
func (c *ItemCatalog) Resolve(name string) int {
	if id, ok := c.ids[name]; ok {
		return id
	}
	id := len(c.names)
	c.ids[name] = id
	c.names = append(c.names, name)
	return id
}

// lookup returns the identifier of an already known name
func (c *ItemCatalog) lookup(name string) (int, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// NameOf returns the name registered for id or an empty string if id is unknown
func (c *ItemCatalog) NameOf(id int) string {
	if id < 0 || id >= len(c.names) {
		return ""
	}
	return c.names[id]
}

// Names resolves every id of the itemset to its name
func (c *ItemCatalog) Names(items Itemset) []string {
	names := make([]string, 0, len(items))
	for _, id := range items {
		names = append(names, c.NameOf(id))
	}
	return names
}

// Len returns number of distinct items seen
func (c *ItemCatalog) Len() int {
	return len(c.names)
}
