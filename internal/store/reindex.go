package store

import (
	"github.com/pkg/errors"
)

// ErrLengthMismatch is returned by Combine when keys and values differ in
// length.
var ErrLengthMismatch = errors.New("collections: keys and values must have the same length")

// Two renumbering policies exist and every operation that changes keys uses
// exactly one of them:
//
//   - Reindex drops every key, named ones included, and numbers the values
//     from zero.
//   - Renumber numbers index keys from zero in order and keeps named keys.

// Reindex returns a Store holding the values of entries under keys
// 0..len(entries)-1.
func Reindex[T any](entries []Entry[T]) *Store[T] {
	s := New[T]()
	for _, e := range entries {
		s.Append(e.Value)
	}
	return s
}

// Renumber returns a Store with the entries in order, index keys renumbered
// from zero and named keys kept. A repeated name keeps its first position and
// its last value.
func Renumber[T any](entries []Entry[T]) *Store[T] {
	s := New[T]()
	for _, e := range entries {
		if e.Key.IsName() {
			s.Put(e.Key, e.Value)
			continue
		}
		s.Append(e.Value)
	}
	return s
}

// Concat returns the entries of a followed by those of b, renumbered.
func Concat[T any](a, b []Entry[T]) *Store[T] {
	all := make([]Entry[T], 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return Renumber(all)
}

// Splice returns entries with v placed at positional index position,
// renumbered. position is clamped to [0, len(entries)].
func Splice[T any](entries []Entry[T], position int, v T) *Store[T] {
	position = max(0, min(position, len(entries)))
	all := make([]Entry[T], 0, len(entries)+1)
	all = append(all, entries[:position]...)
	all = append(all, Entry[T]{Key: Index(0), Value: v})
	all = append(all, entries[position:]...)
	return Renumber(all)
}

// Reverse returns entries in reverse order with their keys kept.
func Reverse[T any](entries []Entry[T]) *Store[T] {
	s := New[T]()
	for i := len(entries) - 1; i >= 0; i-- {
		s.Put(entries[i].Key, entries[i].Value)
	}
	return s
}

// Combine pairs keys[i] with values[i]. A repeated key keeps its first
// position and its last value.
func Combine[T any](keys []Key, values []T) (*Store[T], error) {
	if len(keys) != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d keys, %d values", len(keys), len(values))
	}
	s := New[T]()
	for i, k := range keys {
		s.Put(k, values[i])
	}
	return s, nil
}
