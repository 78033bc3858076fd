package collections

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-typed-collections/internal/store"
)

// Derivations return a new Collection and never touch the receiver. Values
// that are already in the receiver are not validated again; values coming
// from outside (Add, Prepend, Merge, Combine) are.

// RemoveWhere returns the entries whose value does not satisfy pred, with
// their keys.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) *Collection[T] {
	s := c.items.Clone()
	c.items.Range(func(k Key, v T) bool {
		if pred(v) {
			s.Delete(k)
		}
		return true
	})
	return c.derive(s)
}

// Where returns the values that satisfy pred under new keys 0..n-1.
//
// Unlike RemoveWhere, Where does not keep keys.
func (c *Collection[T]) Where(pred func(T) bool) *Collection[T] {
	s := store.New[T]()
	c.items.Range(func(_ Key, v T) bool {
		if pred(v) {
			s.Append(v)
		}
		return true
	})
	return c.derive(s)
}

// Except returns c without the listed keys; the other keys are kept.
func (c *Collection[T]) Except(keys ...Key) *Collection[T] {
	s := c.items.Clone()
	for _, k := range keys {
		s.Delete(k)
	}
	return c.derive(s)
}

// Nth returns every value whose position p (0-based, in iteration order)
// satisfies p % step == offset, under new keys 0..n-1.
func (c *Collection[T]) Nth(step, offset int) (*Collection[T], error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrInvalidStep, "step %d", step)
	}
	s := store.New[T]()
	position := 0
	c.items.Range(func(_ Key, v T) bool {
		if position%step == offset {
			s.Append(v)
		}
		position++
		return true
	})
	return c.derive(s), nil
}

// Shuffle returns the values in random order under new keys 0..n-1, using
// the source set with WithRand.
func (c *Collection[T]) Shuffle() *Collection[T] {
	values := c.items.Values()
	swap := func(i, j int) { values[i], values[j] = values[j], values[i] }
	if c.cfg.rand != nil {
		c.cfg.rand.Shuffle(len(values), swap)
	} else {
		rand.Shuffle(len(values), swap)
	}
	return c.derive(store.FromValues(values))
}

// Reverse returns the entries in reverse order with their keys.
func (c *Collection[T]) Reverse() *Collection[T] {
	return c.derive(store.Reverse(c.items.Entries()))
}

// Add returns a copy of c with v appended under the next sequential key.
func (c *Collection[T]) Add(v T) (*Collection[T], error) {
	if err := c.cfg.check(Index(c.items.Next()), v); err != nil {
		return nil, err
	}
	s := c.items.Clone()
	s.Append(v)
	return c.derive(s), nil
}

// Remove returns a copy of c without one entry holding v.
//
// Without key, the first entry whose value equals v is dropped. With key,
// the entry at key is dropped only if its value equals v. When nothing
// matches the copy equals c.
func (c *Collection[T]) Remove(v T, key ...Key) *Collection[T] {
	s := c.items.Clone()
	if len(key) == 0 {
		if k, ok := c.Search(v); ok {
			s.Delete(k)
		}
		return c.derive(s)
	}
	if cur, ok := c.items.Get(key[0]); ok && c.cfg.equal(cur, v) {
		s.Delete(key[0])
	}
	return c.derive(s)
}

// Prepend returns a copy of c with v first. Index keys are renumbered from
// zero; named keys are kept.
func (c *Collection[T]) Prepend(v T) (*Collection[T], error) {
	if err := c.cfg.check(Index(0), v); err != nil {
		return nil, err
	}
	return c.derive(store.Splice(c.items.Entries(), 0, v)), nil
}

// Merge returns the entries of c followed by those of src, normalised as in
// New. Index keys of both halves are renumbered from zero; named keys are
// kept, and a name present in both takes the value from src at its position
// in c.
//
// Every value from src is validated when c enforces a validator.
func (c *Collection[T]) Merge(src any) (*Collection[T], error) {
	incoming, err := normalize[T](src)
	if err != nil {
		return nil, err
	}
	if err := c.cfg.validateAll(incoming); err != nil {
		return nil, err
	}
	return c.derive(store.Concat(c.items.Entries(), incoming)), nil
}

// Combine returns a collection keyed by the values of c (converted with
// KeyOf) holding the values of src, normalised as in New, pairwise in order.
// When a key repeats, the later value wins at the first position.
//
// src must have as many entries as c, otherwise ErrLengthMismatch is
// returned. Every value from src is validated when c enforces a validator.
func (c *Collection[T]) Combine(src any) (*Collection[T], error) {
	incoming, err := normalize[T](src)
	if err != nil {
		return nil, err
	}

	keys := make([]Key, 0, c.Count())
	var keyErr error
	c.items.Range(func(_ Key, v T) bool {
		var k Key
		k, keyErr = KeyOf(v)
		keys = append(keys, k)
		return keyErr == nil
	})
	if keyErr != nil {
		return nil, keyErr
	}

	values := make([]T, len(incoming))
	for i, e := range incoming {
		values[i] = e.Value
	}
	s, err := store.Combine(keys, values)
	if err != nil {
		return nil, err
	}
	if err := c.cfg.validateAll(s.Entries()); err != nil {
		return nil, err
	}
	return c.derive(s), nil
}
