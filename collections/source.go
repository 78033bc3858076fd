package collections

import (
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Arrayable is implemented by values that expose a canonical ordered array
// form. Collections implement it, and New accepts it as an item source.
type Arrayable interface {
	ToArray() Pairs[any]
}

// lister is implemented by collections of the same element type; their
// entries are copied without going through any.
type lister[T any] interface {
	All() Pairs[T]
}

// normalize turns an item source into ordered entries. Values that are not a
// T fail with a *ValidationError wrapping ErrInvalidType; every such failure
// is reported, combined with multierr.
//
// Supported sources, in the order they are tried:
//
//	nil, nil pointer            no entries
//	Pairs[T], []Entry[T]        verbatim
//	[]T                         sequential keys
//	All() Pairs[T]              another collection, keys kept
//	Arrayable                   its ToArray form
//	Pairs[any], []Entry[any]    verbatim, values asserted to T
//	any other slice or array    sequential keys, values asserted to T
//	map with scalar keys        sorted keys, values asserted to T
//	struct, *struct             exported fields in declaration order
//	anything else               a single entry at key 0
func normalize[T any](items any) ([]Entry[T], error) {
	rv := reflect.ValueOf(items)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	switch src := items.(type) {
	case nil:
		return nil, nil
	case Pairs[T]:
		return append([]Entry[T](nil), src...), nil
	case []Entry[T]:
		return append([]Entry[T](nil), src...), nil
	case []T:
		out := make([]Entry[T], len(src))
		for i, v := range src {
			out[i] = Entry[T]{Key: Index(i), Value: v}
		}
		return out, nil
	case lister[T]:
		return src.All(), nil
	case Arrayable:
		return assertEntries[T](src.ToArray())
	case Pairs[any]:
		return assertEntries[T](src)
	case []Entry[any]:
		return assertEntries[T](src)
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		dyn := make([]Entry[any], rv.Len())
		for i := range dyn {
			dyn[i] = Entry[any]{Key: Index(i), Value: rv.Index(i).Interface()}
		}
		return assertEntries[T](dyn)
	case reflect.Map:
		dyn, err := mapEntries(rv)
		if err != nil {
			return nil, err
		}
		return assertEntries[T](dyn)
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			dyn, err := structEntries(rv.Elem())
			if err != nil {
				return nil, err
			}
			return assertEntries[T](dyn)
		}
	case reflect.Struct:
		dyn, err := structEntries(rv)
		if err != nil {
			return nil, err
		}
		return assertEntries[T](dyn)
	}

	return assertEntries[T]([]Entry[any]{{Key: Index(0), Value: items}})
}

func assertEntries[T any](dyn []Entry[any]) ([]Entry[T], error) {
	out := make([]Entry[T], 0, len(dyn))
	nilable := isNilable[T]()
	var errs error
	for _, e := range dyn {
		v, ok := e.Value.(T)
		if !ok && !(e.Value == nil && nilable) {
			errs = multierr.Append(errs, &ValidationError{Key: e.Key, Value: e.Value, Reason: ErrInvalidType})
			continue
		}
		out = append(out, Entry[T]{Key: e.Key, Value: v})
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// isNilable reports whether nil is a valid T.
func isNilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// mapEntries orders a Go map deterministically: index keys ascending, then
// names in lexical order.
func mapEntries(rv reflect.Value) ([]Entry[any], error) {
	out := make([]Entry[any], 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := KeyOf(iter.Key().Interface())
		if err != nil {
			return nil, errors.Wrap(ErrUnsupportedSource, err.Error())
		}
		out = append(out, Entry[any]{Key: k, Value: iter.Value().Interface()})
	}
	sort.SliceStable(out, func(i, j int) bool { return keyLess(out[i].Key, out[j].Key) })
	return out, nil
}

func keyLess(a, b Key) bool {
	ai, aIndex := a.Int()
	bi, bIndex := b.Int()
	switch {
	case aIndex && bIndex:
		return ai < bi
	case aIndex != bIndex:
		return aIndex
	default:
		return a.String() < b.String()
	}
}

// structEntries decodes a struct with mapstructure and emits the fields in
// declaration order. Keys mapstructure produced that no field declares
// directly (squashed embeds) follow in lexical order.
func structEntries(rv reflect.Value) ([]Entry[any], error) {
	fields := map[string]any{}
	if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
		return nil, errors.Wrap(ErrUnsupportedSource, err.Error())
	}

	out := make([]Entry[any], 0, len(fields))
	seen := make(map[string]bool, len(fields))
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ","); tag != "" {
			name = tag
		}
		v, ok := fields[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, Entry[any]{Key: Name(name), Value: v})
	}

	rest := make([]string, 0)
	for name := range fields {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, Entry[any]{Key: Name(name), Value: fields[name]})
	}
	return out, nil
}
