// Package collections provides Collection, a generic ordered associative
// container, and the typed collections built on it.
//
// # Overview
//
// A [Collection][T] keeps key/value entries in insertion order. Keys are
// integer indexes ([Index]) or string names ([Name]); iteration order never
// depends on key magnitude.
//
//	c, _ := collections.NewStrings([]string{"a", "b", "c"})
//	c.Push("d")
//	c.Unset(collections.Index(1))      // {0:"a", 2:"c", 3:"d"}
//	c.Reset()                          // ["a","c","d"]
//	odd, _ := c.Nth(2, 1)              // ["c"]
//
// # Validation
//
// A collection built with [Enforce] runs its [Validator] on every value it
// accepts: the initial items, and every value later pushed, inserted, added,
// prepended, merged or combined. A rejected value produces a
// [*ValidationError] (matched by [ErrValidation]) and leaves the collection
// untouched. [NewStrings] is the stock text collection.
//
// The storage primitives that skip validation live in an internal package;
// callers only ever reach them through the validated methods here.
//
// # Keys
//
// Most operations keep keys. The ones that renumber say so:
//
//   - Reset, Where, Nth and Shuffle drop every key and number the values 0..n-1
//   - Insert, Prepend and Merge renumber index keys from 0 and keep names
//
// # Derivation vs mutation
//
// Push, Pop, Insert, Unset, Clear and Reset modify the receiver. Every other
// operation that produces a collection returns a new, independent one.
//
// # Concurrency
//
// Collections are not safe for concurrent use. Only the macro registry
// ([RegisterMacro], [CallMacro]) is goroutine-safe.
package collections
