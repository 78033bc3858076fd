package collections

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/hasbyte1/go-typed-collections/internal/store"
)

// Key identifies an entry: an integer index or a string name.
// The zero Key is NoKey.
type Key = store.Key

// Entry is one key/value pair of a collection.
type Entry[T any] = store.Entry[T]

// NoKey is the zero Key; Search returns it when nothing matches.
var NoKey = store.NoKey

// Index returns the integer key i.
func Index(i int) Key { return store.Index(i) }

// Name returns the string key s. Canonical decimal integers become index
// keys: Name("3") == Index(3).
func Name(s string) Key { return store.Name(s) }

// Keys converts integers to index keys, for use with Except.
func Keys(indexes ...int) []Key {
	out := make([]Key, len(indexes))
	for i, idx := range indexes {
		out[i] = Index(idx)
	}
	return out
}

// KeyOf converts a scalar into a Key the way Combine does:
//
//   - Key values are returned as is
//   - strings go through Name
//   - signed and unsigned integers become index keys
//   - floats are truncated toward zero
//   - bools become 0 or 1
//   - nil becomes the empty name
//
// Anything else fails with ErrIllegalKey, including values that only
// implement fmt.Stringer.
func KeyOf(v any) (Key, error) {
	switch k := v.(type) {
	case Key:
		if !k.Valid() {
			return NoKey, errors.Wrap(ErrIllegalKey, "no key")
		}
		return k, nil
	case nil:
		return Name(""), nil
	case string:
		return Name(k), nil
	case float32:
		return floatKey(float64(k))
	case float64:
		return floatKey(k)
	}

	// cast covers the builtin types; named types fall back to reflect.
	if i, err := cast.ToIntE(v); err == nil {
		return Index(i), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return Index(1), nil
		}
		return Index(0), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Index(int(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Index(int(rv.Uint())), nil
	case reflect.String:
		return Name(rv.String()), nil
	}
	return NoKey, errors.Wrapf(ErrIllegalKey, "%T", v)
}

func floatKey(f float64) (Key, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return NoKey, errors.Wrapf(ErrIllegalKey, "%v", f)
	}
	return Index(int(f)), nil
}
