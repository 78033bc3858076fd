package store

import (
	"strconv"
)

type keyKind uint8

const (
	kindNone keyKind = iota
	kindIndex
	kindName
)

// Key identifies an entry in a Store. It is either an integer index or a
// string name. The zero Key is NoKey and never identifies an entry.
//
// Key is comparable and can be used as a Go map key.
type Key struct {
	kind  keyKind
	index int
	name  string
}

// NoKey is the zero Key. It is returned by lookups that find nothing.
var NoKey = Key{}

// Index returns the integer key i.
func Index(i int) Key {
	return Key{kind: kindIndex, index: i}
}

// Name returns the string key s.
//
// Canonical decimal integers are normalised to index keys, so Name("7")
// equals Index(7). "07", "+7" and " 7" stay names.
func Name(s string) Key {
	if i, ok := canonicalInt(s); ok {
		return Index(i)
	}
	return Key{kind: kindName, name: s}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(digits) > 1) {
		return 0, false
	}
	if digits == "0" && s[0] == '-' {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Valid reports whether k identifies an entry (k != NoKey).
func (k Key) Valid() bool { return k.kind != kindNone }

// IsIndex reports whether k is an integer key.
func (k Key) IsIndex() bool { return k.kind == kindIndex }

// IsName reports whether k is a string key.
func (k Key) IsName() bool { return k.kind == kindName }

// Int returns the integer value of an index key and true, or 0 and false.
func (k Key) Int() (int, bool) {
	if k.kind != kindIndex {
		return 0, false
	}
	return k.index, true
}

// String returns the decimal form of an index key, the name of a named key,
// and "<none>" for NoKey.
func (k Key) String() string {
	switch k.kind {
	case kindIndex:
		return strconv.Itoa(k.index)
	case kindName:
		return k.name
	default:
		return "<none>"
	}
}

// MarshalText encodes k as its String form. NoKey encodes as "".
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return []byte{}, nil
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes text with the same rules as Name.
func (k *Key) UnmarshalText(text []byte) error {
	*k = Name(string(text))
	return nil
}
