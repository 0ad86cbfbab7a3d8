package model

// Keyed is implemented by entries that carry their own unique key.
type Keyed[K comparable] interface {
	Key() K
}

// KeyedCollection is an insertion-ordered collection with at most one entry per key.
// The zero value is not usable; build one with NewKeyedCollection.
type KeyedCollection[K comparable, V Keyed[K]] struct {
	items []V
	index map[K]int
}

// NewKeyedCollection builds a collection from items. When items repeat a key the first
// occurrence wins.
func NewKeyedCollection[K comparable, V Keyed[K]](items []V) *KeyedCollection[K, V] {
	c := &KeyedCollection[K, V]{
		items: make([]V, 0, len(items)),
		index: make(map[K]int, len(items)),
	}

	for _, item := range items {
		c.Add(item)
	}

	return c
}

func (c *KeyedCollection[K, V]) Len() int {
	return len(c.items)
}

func (c *KeyedCollection[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return c.items[i], true
}

func (c *KeyedCollection[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Add appends item and reports false, leaving the collection untouched, if its key exists.
func (c *KeyedCollection[K, V]) Add(item V) bool {
	key := item.Key()
	if _, ok := c.index[key]; ok {
		return false
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, item)

	return true
}

// Replace overwrites the entry with item's key in place. It reports false if there is none.
func (c *KeyedCollection[K, V]) Replace(item V) bool {
	i, ok := c.index[item.Key()]
	if !ok {
		return false
	}

	c.items[i] = item

	return true
}

// Remove deletes the entry for key, keeping the relative order of the others.
func (c *KeyedCollection[K, V]) Remove(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, key)

	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}

	return removed, true
}

// Items returns a copy of the entries in insertion order. It is never nil.
func (c *KeyedCollection[K, V]) Items() []V {
	out := make([]V, len(c.items))
	copy(out, c.items)

	return out
}
