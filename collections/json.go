package collections

import (
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// JSONOptions controls ToJSON. The zero value produces compact JSON.
type JSONOptions struct {
	// Pretty indents the output by Indent spaces per level (4 when Indent is 0).
	Pretty bool
	Indent int
	// ForceObject encodes lists as objects keyed "0", "1", ...
	ForceObject bool
	// EscapeHTML escapes <, > and & inside strings.
	//
	// Invalid UTF-8 in strings is written as \ufffd whatever the options.
	EscapeHTML bool
	// SortKeys sorts the keys of Go maps nested inside values. Entry order
	// is never changed.
	SortKeys bool
}

func (o JSONOptions) api() jsoniter.API {
	cfg := jsoniter.Config{
		EscapeHTML:  o.EscapeHTML,
		SortMapKeys: o.SortKeys,
	}
	if o.Pretty {
		cfg.IndentionStep = o.Indent
		if cfg.IndentionStep <= 0 {
			cfg.IndentionStep = 4
		}
	}
	return cfg.Froze()
}

// Pairs is an ordered sequence of entries, the interchange form returned by
// All and ToArray.
//
// It encodes as a JSON array when its keys are exactly 0..n-1 in order, and
// as a JSON object in entry order otherwise.
type Pairs[T any] []Entry[T]

// IsList reports whether the keys are exactly 0..n-1 in order.
func (p Pairs[T]) IsList() bool {
	for i, e := range p {
		if idx, ok := e.Key.Int(); !ok || idx != i {
			return false
		}
	}
	return true
}

// Keys returns the keys in order.
func (p Pairs[T]) Keys() []Key {
	out := make([]Key, len(p))
	for i, e := range p {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in order.
func (p Pairs[T]) Values() []T {
	out := make([]T, len(p))
	for i, e := range p {
		out[i] = e.Value
	}
	return out
}

// MarshalJSON implements json.Marshaler with compact output.
func (p Pairs[T]) MarshalJSON() ([]byte, error) {
	return p.encode(JSONOptions{})
}

// UnmarshalJSON decodes a JSON array into sequential keys or a JSON object
// into keys in document order.
func (p *Pairs[T]) UnmarshalJSON(data []byte) error {
	entries, err := decodeEntries[T](data)
	if err != nil {
		return err
	}
	*p = entries
	return nil
}

func (p Pairs[T]) encode(opts JSONOptions) ([]byte, error) {
	api := opts.api()
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	list := p.IsList() && !opts.ForceObject
	switch {
	case len(p) == 0 && list:
		stream.WriteEmptyArray()
	case len(p) == 0:
		stream.WriteEmptyObject()
	case list:
		stream.WriteArrayStart()
		for i, e := range p {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteVal(e.Value)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteObjectStart()
		for i, e := range p {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(e.Key.String())
			stream.WriteVal(e.Value)
		}
		stream.WriteObjectEnd()
	}

	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "collections: encode")
	}
	return validUTF8(append([]byte(nil), stream.Buffer()...)), nil
}

// decodeEntries reads a JSON array or object. Syntax errors, including
// anything after the top-level value, wrap ErrMalformedJSON. Elements that do
// not decode into T are each reported as a *ValidationError wrapping
// ErrInvalidType.
func decodeEntries[T any](data []byte) ([]Entry[T], error) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	it := api.BorrowIterator(data)
	defer api.ReturnIterator(it)

	var raw []Entry[[]byte]
	switch it.WhatIsNext() {
	case jsoniter.ArrayValue:
		raw = make([]Entry[[]byte], 0)
		for i := 0; it.ReadArray(); i++ {
			v := it.SkipAndReturnBytes()
			if it.Error != nil {
				break
			}
			raw = append(raw, Entry[[]byte]{Key: Index(i), Value: v})
		}
	case jsoniter.ObjectValue:
		raw = make([]Entry[[]byte], 0)
		it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			v := it.SkipAndReturnBytes()
			raw = append(raw, Entry[[]byte]{Key: Name(field), Value: v})
			return it.Error == nil
		})
	case jsoniter.NilValue:
		it.ReadNil()
	case jsoniter.InvalidValue:
		return nil, errors.Wrap(ErrMalformedJSON, "no JSON value")
	default:
		return nil, errors.Wrap(ErrUnsupportedSource, "JSON document must be an array or an object")
	}

	if it.Error == nil {
		// Only whitespace may follow the top-level value.
		if it.WhatIsNext(); it.Error == nil {
			return nil, errors.Wrap(ErrMalformedJSON, "unexpected data after the top-level value")
		}
	}
	if it.Error != io.EOF {
		return nil, errors.Wrap(ErrMalformedJSON, it.Error.Error())
	}
	if raw == nil {
		return nil, nil
	}

	out := make([]Entry[T], 0, len(raw))
	var errs error
	for _, e := range raw {
		var v T
		if err := api.Unmarshal(e.Value, &v); err != nil {
			var dyn any
			_ = api.Unmarshal(e.Value, &dyn)
			errs = multierr.Append(errs, &ValidationError{Key: e.Key, Value: dyn, Reason: ErrInvalidType})
			continue
		}
		out = append(out, Entry[T]{Key: e.Key, Value: v})
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// validUTF8 replaces every byte of b that is not part of a valid UTF-8
// sequence with the escape \ufffd. Such bytes only occur inside string
// literals, where the escape is valid JSON.
func validUTF8(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	out := make([]byte, 0, len(b)+8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			out = append(out, `\ufffd`...)
		} else {
			out = append(out, b[:size]...)
		}
		b = b[size:]
	}
	return out
}
