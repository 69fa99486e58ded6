package memory

// collection is a keyed set of records that remembers insertion order.
// It is not safe for concurrent use; ContentStore guards it.
//
// clone deep-copies a record. It is applied on the way in and on the way out, so
// neither a caller's input nor a returned record shares memory with the stored one.
type collection[T any] struct {
	order []string
	items map[string]T
	clone func(T) T
}

// newCollection builds an empty collection. A nil clone means T holds no
// reference types and a plain copy is enough.
func newCollection[T any](clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{items: make(map[string]T), clone: clone}
}

// put stores a copy of v under key. Replacing an existing key keeps its original position.
func (c *collection[T]) put(key string, v T) {
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = c.clone(v)
}

func (c *collection[T]) get(key string) (T, bool) {
	v, ok := c.items[key]
	if !ok {
		return v, false
	}
	return c.clone(v), true
}

// filter returns copies of the matching records in insertion order. The result is never nil.
func (c *collection[T]) filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, key := range c.order {
		v := c.items[key]
		if match == nil || match(v) {
			out = append(out, c.clone(v))
		}
	}
	return out
}

func (c *collection[T]) len() int {
	return len(c.order)
}
