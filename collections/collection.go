package collections

import (
	"fmt"
	"iter"
	"log/slog"

	"go.uber.org/multierr"

	"github.com/hasbyte1/go-typed-collections/internal/store"
)

// Collection is an ordered associative container of T values.
//
// Entries keep their insertion order, which is independent of key magnitude.
// Keys are integer indexes or string names; explicit keys are kept verbatim
// and sequential keys are only renumbered by the operations that say so.
//
// A Collection may enforce a Validator (see Enforce). When it does, every
// value it holds passed the validator when it was inserted, and every
// operation that brings in a new value validates it first. A rejected value
// leaves the collection unchanged.
//
// Operations fall in three groups:
//
//   - reads (Get, Search, Each, First, Last, ...) never modify the collection
//   - derivations (Where, Reverse, Merge, ...) return a new, independent
//     Collection carrying the same validator and options
//   - in-place mutations (Push, Pop, Insert, Unset, Clear, Reset) modify the
//     receiver and return it for chaining
//
// A Collection is not safe for concurrent use; callers sharing one between
// goroutines must synchronise access themselves. Callbacks passed to Each,
// Where and the like must not modify the collection they iterate.
type Collection[T any] struct {
	items *store.Store[T]
	cfg   *settings[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from an item source. See Arrayable for the
// accepted sources: slices, ordered Pairs, other collections, Go maps,
// structs and single scalars.
//
// With Enforce, every initial value is validated; on failure New returns all
// rejections combined and no collection.
//
//	c, err := collections.New[string]([]string{"a", "b"},
//	    collections.Enforce(collections.NotEmpty))
func New[T any](items any, opts ...Option[T]) (*Collection[T], error) {
	entries, err := normalize[T](items)
	if err != nil {
		return nil, err
	}
	cfg := newSettings(opts)
	if err := cfg.validateAll(entries); err != nil {
		return nil, err
	}
	return &Collection[T]{items: store.FromEntries(entries), cfg: cfg}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](items any, opts ...Option[T]) *Collection[T] {
	c, err := New(items, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Of creates a non-enforcing Collection holding values under keys 0..n-1.
func Of[T any](values ...T) *Collection[T] {
	return &Collection[T]{items: store.FromValues(values), cfg: newSettings[T](nil)}
}

// FromJSON creates a Collection from a JSON array (sequential keys) or object
// (keys in document order). Elements are decoded straight into T; those that
// do not fit fail with a *ValidationError wrapping ErrInvalidType, and
// input that is not well-formed JSON fails with ErrMalformedJSON.
func FromJSON[T any](data []byte, opts ...Option[T]) (*Collection[T], error) {
	entries, err := decodeEntries[T](data)
	if err != nil {
		return nil, err
	}
	return New(Pairs[T](entries), opts...)
}

// derive wraps s in a Collection sharing c's settings.
func (c *Collection[T]) derive(s *store.Store[T]) *Collection[T] {
	return &Collection[T]{items: s, cfg: c.cfg}
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func (s *settings[T]) check(k Key, v T) error {
	if !s.enforce {
		return nil
	}
	if err := s.validate(v); err != nil {
		verr := &ValidationError{Key: k, Value: v, Reason: err}
		s.logger.Debug("Collection rejected value",
			slog.String("key", k.String()),
			slog.Any("value", v),
			slog.Any("error", err),
		)
		return verr
	}
	return nil
}

func (s *settings[T]) validateAll(entries []Entry[T]) error {
	if !s.enforce {
		return nil
	}
	var errs error
	for _, e := range entries {
		errs = multierr.Append(errs, s.check(e.Key, e.Value))
	}
	return errs
}

// EnforcesType reports whether the collection validates the values it accepts.
func (c *Collection[T]) EnforcesType() bool { return c.cfg.enforce }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the entries in current order. The slice is a copy.
func (c *Collection[T]) All() Pairs[T] { return c.items.Entries() }

// Entries iterates over the entries in order:
//
//	for k, v := range c.Entries() { ... }
func (c *Collection[T]) Entries() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		c.items.Range(yield)
	}
}

// Get returns the value at key, or def when key is absent.
func (c *Collection[T]) Get(key Key, def T) T {
	if v, ok := c.items.Get(key); ok {
		return v
	}
	return def
}

// Count returns the number of entries.
func (c *Collection[T]) Count() int { return c.items.Len() }

// Exists reports whether key is present.
func (c *Collection[T]) Exists(key Key) bool { return c.items.Has(key) }

// Contains reports whether any entry's value equals v.
func (c *Collection[T]) Contains(v T) bool {
	_, ok := c.Search(v)
	return ok
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection[T]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[T]) IsNotEmpty() bool { return !c.IsEmpty() }

// Search returns the key of the first entry whose value equals v.
// It returns NoKey and false when there is none.
func (c *Collection[T]) Search(v T) (Key, bool) {
	found := NoKey
	c.items.Range(func(k Key, item T) bool {
		if c.cfg.equal(item, v) {
			found = k
			return false
		}
		return true
	})
	return found, found.Valid()
}

// Divide returns the keys and the values, each in current order.
func (c *Collection[T]) Divide() Pair[[]Key, []T] {
	return Pair[[]Key, []T]{First: c.items.Keys(), Second: c.items.Values()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry in order and stops early when fn
// returns false. It returns c.
//
// fn must not modify c.
func (c *Collection[T]) Each(fn func(T, Key) bool) *Collection[T] {
	c.items.Range(func(k Key, v T) bool { return fn(v, k) })
	return c
}

// Last returns the value of the last entry in iteration order (not the
// largest key) and true, or the zero value and false when c is empty. When
// fns are given they are called with the value before it is returned.
func (c *Collection[T]) Last(fns ...func(T)) (T, bool) {
	e, ok := c.items.Last()
	if !ok {
		var zero T
		return zero, false
	}
	for _, fn := range fns {
		fn(e.Value)
	}
	return e.Value, true
}

// First is Last applied to a reversed copy of c.
func (c *Collection[T]) First(fns ...func(T)) (T, bool) {
	return c.Reverse().Last(fns...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Interchange
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the entries with values widened to any.
func (c *Collection[T]) ToArray() Pairs[any] {
	out := make(Pairs[any], 0, c.Count())
	c.items.Range(func(k Key, v T) bool {
		out = append(out, Entry[any]{Key: k, Value: v})
		return true
	})
	return out
}

// ToJSON encodes the entries with opts.
func (c *Collection[T]) ToJSON(opts JSONOptions) (string, error) {
	b, err := c.All().encode(opts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements json.Marshaler with compact output.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return c.All().encode(JSONOptions{})
}

// String returns the compact JSON form. It implements fmt.Stringer.
func (c *Collection[T]) String() string {
	s, err := c.ToJSON(JSONOptions{})
	if err != nil {
		return fmt.Sprintf("%v", c.items.Values())
	}
	return s
}
