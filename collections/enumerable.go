package collections

import "iter"

// Enumerable is the read-and-derive surface of [Collection][T].
//
// Hand out an Enumerable instead of a *Collection when the receiver must not
// be able to push, pop, insert or unset. Derivations still return
// *Collection values, which are independent copies.
type Enumerable[T any] interface {
	All() Pairs[T]
	Entries() iter.Seq2[Key, T]
	Get(key Key, def T) T
	Count() int
	Exists(key Key) bool
	Contains(v T) bool
	IsEmpty() bool
	IsNotEmpty() bool
	Search(v T) (Key, bool)
	Divide() Pair[[]Key, []T]
	First(fns ...func(T)) (T, bool)
	Last(fns ...func(T)) (T, bool)

	RemoveWhere(pred func(T) bool) *Collection[T]
	Where(pred func(T) bool) *Collection[T]
	Except(keys ...Key) *Collection[T]
	Nth(step, offset int) (*Collection[T], error)
	Shuffle() *Collection[T]
	Reverse() *Collection[T]

	ToArray() Pairs[any]
	ToJSON(opts JSONOptions) (string, error)
	String() string
}

var _ Enumerable[string] = (*Collection[string])(nil)
