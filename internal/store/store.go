// Package store is the low-level ordered key/value storage behind
// collections.Collection.
//
// A Store keeps entries in insertion order, keyed by Key. Its primitives are
// unrestricted: nothing here validates values. The collections package is the
// only caller and routes every new value through its validator first.
//
// A Store is not safe for concurrent use.
package store

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Entry is one key/value pair of a Store.
type Entry[T any] struct {
	Key   Key
	Value T
}

// Store is an insertion-ordered map from Key to T.
//
// Besides the entries it tracks the next sequential index handed out by
// Append: one past the largest index key ever put (never below zero). Pop
// gives the slot back when it removes that largest index; Delete does not.
type Store[T any] struct {
	m    *linkedhashmap.Map
	next int
}

// New returns an empty Store.
func New[T any]() *Store[T] {
	return &Store[T]{m: linkedhashmap.New()}
}

// FromEntries builds a Store from entries in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func FromEntries[T any](entries []Entry[T]) *Store[T] {
	s := New[T]()
	for _, e := range entries {
		s.Put(e.Key, e.Value)
	}
	return s
}

// FromValues builds a Store with sequential keys 0..len(values)-1.
func FromValues[T any](values []T) *Store[T] {
	s := New[T]()
	for _, v := range values {
		s.Append(v)
	}
	return s
}

func cast[T any](v interface{}) T {
	t, _ := v.(T)
	return t
}

// Len returns the number of entries.
func (s *Store[T]) Len() int { return s.m.Size() }

// Next returns the key the next Append will use.
func (s *Store[T]) Next() int { return s.next }

// Get returns the value stored under k.
func (s *Store[T]) Get(k Key) (T, bool) {
	v, ok := s.m.Get(k)
	if !ok {
		var zero T
		return zero, false
	}
	return cast[T](v), true
}

// Has reports whether k is present.
func (s *Store[T]) Has(k Key) bool {
	_, ok := s.m.Get(k)
	return ok
}

// Put stores v under k. An existing key keeps its position.
func (s *Store[T]) Put(k Key, v T) {
	if i, ok := k.Int(); ok && i >= s.next {
		s.next = i + 1
	}
	s.m.Put(k, v)
}

// Append stores v under the next sequential index and returns that key.
func (s *Store[T]) Append(v T) Key {
	k := Index(s.next)
	s.Put(k, v)
	return k
}

// Delete removes k and reports whether it was present.
func (s *Store[T]) Delete(k Key) bool {
	if !s.Has(k) {
		return false
	}
	s.m.Remove(k)
	return true
}

// Last returns the last entry in iteration order.
func (s *Store[T]) Last() (Entry[T], bool) {
	it := s.m.Iterator()
	if !it.Last() {
		return Entry[T]{}, false
	}
	return Entry[T]{Key: it.Key().(Key), Value: cast[T](it.Value())}, true
}

// Pop removes and returns the last entry in iteration order.
func (s *Store[T]) Pop() (Entry[T], bool) {
	e, ok := s.Last()
	if !ok {
		return e, false
	}
	s.m.Remove(e.Key)
	if i, isIndex := e.Key.Int(); isIndex && i == s.next-1 {
		s.next--
	}
	return e, true
}

// Range calls fn for every entry in order until fn returns false.
func (s *Store[T]) Range(fn func(Key, T) bool) {
	it := s.m.Iterator()
	for it.Next() {
		if !fn(it.Key().(Key), cast[T](it.Value())) {
			return
		}
	}
}

// Entries returns a copy of all entries in order.
func (s *Store[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, s.Len())
	s.Range(func(k Key, v T) bool {
		out = append(out, Entry[T]{Key: k, Value: v})
		return true
	})
	return out
}

// Keys returns the keys in order.
func (s *Store[T]) Keys() []Key {
	out := make([]Key, 0, s.Len())
	for _, k := range s.m.Keys() {
		out = append(out, k.(Key))
	}
	return out
}

// Values returns the values in order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for _, v := range s.m.Values() {
		out = append(out, cast[T](v))
	}
	return out
}

// Clone returns an independent copy, including the next sequential index.
func (s *Store[T]) Clone() *Store[T] {
	c := New[T]()
	s.Range(func(k Key, v T) bool {
		c.m.Put(k, v)
		return true
	})
	c.next = s.next
	return c
}

// Clear removes every entry and restarts sequential keys at zero.
func (s *Store[T]) Clear() {
	s.m.Clear()
	s.next = 0
}

// Replace swaps the contents of s for those of o. o must not be used
// afterwards.
func (s *Store[T]) Replace(o *Store[T]) {
	s.m = o.m
	s.next = o.next
}
