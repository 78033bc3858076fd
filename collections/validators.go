package collections

import (
	"reflect"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Reasons returned by the stock validators.
var (
	ErrNotText    = errors.New("not valid UTF-8 text")
	ErrEmptyValue = errors.New("empty value")
	ErrNotAllowed = errors.New("value not allowed")
)

// Text accepts strings that are valid UTF-8.
func Text(s string) error {
	if !utf8.ValidString(s) {
		return ErrNotText
	}
	return nil
}

// NotEmpty accepts non-empty strings.
func NotEmpty(s string) error {
	if s == "" {
		return ErrEmptyValue
	}
	return nil
}

// OneOf returns a Validator accepting only the listed values.
func OneOf[T comparable](allowed ...T) Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v T) error {
		if _, ok := set[v]; !ok {
			return errors.Wrapf(ErrNotAllowed, "%v", v)
		}
		return nil
	}
}

// TypeOf returns a Validator for Collection[any] accepting only values whose
// dynamic type is V.
//
//	c, _ := collections.New[any](nil, collections.Enforce(collections.TypeOf[string]()))
//	_, err := c.Push(42) // errors.Is(err, collections.ErrValidation)
func TypeOf[V any]() Validator[any] {
	return func(v any) error {
		if _, ok := v.(V); !ok {
			return errors.Wrapf(ErrInvalidType, "want %v, got %T", reflect.TypeFor[V](), v)
		}
		return nil
	}
}

// Chain returns a Validator that runs vs in order and stops at the first
// rejection.
func Chain[T any](vs ...Validator[T]) Validator[T] {
	return func(v T) error {
		for _, fn := range vs {
			if fn == nil {
				continue
			}
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}
