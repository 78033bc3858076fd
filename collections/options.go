package collections

import (
	"log/slog"
	"math/rand/v2"
	"reflect"
)

// Validator accepts or rejects a candidate value. A nil return accepts it.
type Validator[T any] func(T) error

// Option configures a Collection at construction. Derived collections
// inherit the options of the collection they came from.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	enforce  bool
	validate Validator[T]
	equal    func(a, b T) bool
	rand     *rand.Rand
	logger   *slog.Logger
}

func newSettings[T any](opts []Option[T]) *settings[T] {
	s := &settings[T]{
		validate: func(T) error { return nil },
		equal:    func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Enforce turns type enforcement on: every value accepted by the collection,
// at construction or later, must pass v. A nil v accepts everything.
// Repeated Enforce options run their validators in order.
//
// Enforcement cannot be switched off once the collection exists.
func Enforce[T any](v Validator[T]) Option[T] {
	return func(s *settings[T]) {
		switch {
		case v == nil:
		case s.enforce:
			s.validate = Chain(s.validate, v)
		default:
			s.validate = v
		}
		s.enforce = true
	}
}

// WithEqual sets the equality used by Contains, Search and Remove.
// The default is reflect.DeepEqual.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(s *settings[T]) {
		if eq != nil {
			s.equal = eq
		}
	}
}

// WithRand sets the random source used by Shuffle. Without it Shuffle uses
// the math/rand/v2 global source.
func WithRand[T any](r *rand.Rand) Option[T] {
	return func(s *settings[T]) { s.rand = r }
}

// WithLogger sets the logger rejections are reported to at debug level.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(s *settings[T]) { s.logger = l }
}
