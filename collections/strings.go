package collections

// NewStrings creates a text collection: a Collection[string] that enforces
// the Text validator. Further Enforce options add validators after Text.
//
//	names, err := collections.NewStrings([]string{"ada", "grace"},
//	    collections.Enforce(collections.NotEmpty))
//	_, err = names.Push("\xff") // rejected: not valid UTF-8
//
// Values read from dynamic sources ([]any, Pairs[any], maps, ...) that are
// not strings are rejected with ErrInvalidType.
func NewStrings(items any, opts ...Option[string]) (*Collection[string], error) {
	return New(items, append([]Option[string]{Enforce(Text)}, opts...)...)
}
