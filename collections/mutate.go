package collections

import (
	"github.com/hasbyte1/go-typed-collections/internal/store"
)

// In-place mutations change the receiver and return it. Each one validates
// a new value before touching storage, so a rejection leaves c unchanged.

// Push appends v under the next sequential key.
func (c *Collection[T]) Push(v T) (*Collection[T], error) {
	if err := c.cfg.check(Index(c.items.Next()), v); err != nil {
		return c, err
	}
	c.items.Append(v)
	return c, nil
}

// Pop removes the last entry in iteration order and returns its value and
// true, or the zero value and false when c is empty.
func (c *Collection[T]) Pop() (T, bool) {
	e, ok := c.items.Pop()
	return e.Value, ok
}

// Insert places v at positional index position (0-based, in iteration order):
//
//   - position <= 0, or c empty: v becomes the first entry
//   - position >= Count(): v is appended under the next sequential key
//   - otherwise v is spliced in before the entry currently at position
//
// Prepending and splicing renumber index keys from zero and keep named keys.
func (c *Collection[T]) Insert(v T, position int) (*Collection[T], error) {
	n := c.Count()
	switch {
	case position <= 0 || n == 0:
		if err := c.cfg.check(Index(0), v); err != nil {
			return c, err
		}
		c.items.Replace(store.Splice(c.items.Entries(), 0, v))
	case position >= n:
		return c.Push(v)
	default:
		if err := c.cfg.check(Index(position), v); err != nil {
			return c, err
		}
		c.items.Replace(store.Splice(c.items.Entries(), position, v))
	}
	return c, nil
}

// Unset removes the entry at key. Other keys are not renumbered. Unset is a
// no-op when key is absent.
func (c *Collection[T]) Unset(key Key) *Collection[T] {
	c.items.Delete(key)
	return c
}

// Clear removes every entry.
func (c *Collection[T]) Clear() *Collection[T] {
	c.items.Clear()
	return c
}

// Reset renumbers every entry 0..n-1 in order, named keys included.
func (c *Collection[T]) Reset() *Collection[T] {
	c.items.Replace(store.Reindex(c.items.Entries()))
	return c
}
