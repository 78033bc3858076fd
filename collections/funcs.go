package collections

import "github.com/hasbyte1/go-typed-collections/internal/store"

// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions. Their results do not enforce a
// validator.

// Map applies fn to every entry and returns a Collection[U] with the same
// keys in the same order.
//
//	lengths := collections.Map(names, func(s string, _ collections.Key) int {
//	    return len(s)
//	})
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	s := store.New[U]()
	c.items.Range(func(k Key, v T) bool {
		s.Put(k, fn(v, k))
		return true
	})
	return &Collection[U]{items: s, cfg: newSettings[U](nil)}
}

// Reduce folds the entries of c, in order, into a single U.
//
//	total := collections.Reduce(c, func(acc int, n int, _ collections.Key) int {
//	    return acc + n
//	}, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	acc := initial
	c.items.Range(func(k Key, v T) bool {
		acc = fn(acc, v, k)
		return true
	})
	return acc
}
