package mining

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"
)

// Itemset is a set of item identifiers kept as a sorted, duplicate free
// sequence so that equality and hashing are structural.
type Itemset []int

// Key is the canonical hashable form of an Itemset
type Key string

// NewItemset returns the canonical itemset for ids (sorted, duplicates collapsed).
// ids is not modified.
func NewItemset(ids ...int) Itemset {
	items := make(Itemset, len(ids))
	copy(items, ids)
	sort.Ints(items)
	return items.compact()
}

func (s Itemset) compact() Itemset {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, id := range s[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

// Size returns number of items in the itemset
func (s Itemset) Size() int {
	return len(s)
}

// Key encodes the itemset as a sequence of uvarints
func (s Itemset) Key() Key {
	buf := make([]byte, 0, len(s)*2)
	for _, id := range s {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	return Key(buf)
}

// Itemset decodes a key produced by Itemset.Key
func (k Key) Itemset() Itemset {
	items := make(Itemset, 0, len(k)/2+1)
	buf := []byte(k)
	for len(buf) > 0 {
		v, n := binary.Uvarint(buf)
		if n <= 0 {
			break
		}
		items = append(items, int(v))
		buf = buf[n:]
	}
	return items
}

// Equal reports whether both itemsets hold the same ids
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders itemsets lexicographically, shorter first on a shared prefix
func (s Itemset) Less(other Itemset) bool {
	for i := 0; i < len(s) && i < len(other); i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return len(s) < len(other)
}

// SubsetOf reports whether every id of s is present in other.
// Both sides are sorted so this is a single merge pass.
func (s Itemset) SubsetOf(other Itemset) bool {
	if len(s) > len(other) {
		return false
	}
	j := 0
	for _, id := range s {
		for j < len(other) && other[j] < id {
			j++
		}
		if j == len(other) || other[j] != id {
			return false
		}
		j++
	}
	return true
}

// SharesPrefix reports whether the first n ids of both itemsets agree
func (s Itemset) SharesPrefix(other Itemset, n int) bool {
	if len(s) < n || len(other) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Union merges two sorted itemsets
func (s Itemset) Union(other Itemset) Itemset {
	out := make(Itemset, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, other[j:]...)
}

// Without returns a copy of the itemset with the id at position i removed
func (s Itemset) Without(i int) Itemset {
	out := make(Itemset, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func (s Itemset) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
