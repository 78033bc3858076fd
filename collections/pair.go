package collections

import "fmt"

// Pair holds two values of possibly different types. Divide returns the keys
// and the values of a collection as a Pair.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Unpack returns both halves:
//
//	keys, values := c.Divide().Unpack()
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
