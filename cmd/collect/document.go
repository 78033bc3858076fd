package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/hasbyte1/go-typed-collections/collections"
)

var errNotCollection = errors.New("value at path is not a JSON array or object")

// readDocument returns the bytes of name, or of stdin when name is empty or
// "-".
func readDocument(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "failed to read stdin")
	}
	data, err := os.ReadFile(name)
	return data, errors.Wrapf(err, "failed to read %s", name)
}

// descend returns the raw JSON at a dot separated path. Canonical integer
// segments index into arrays.
func descend(data []byte, path string) ([]byte, error) {
	if path == "" {
		return data, nil
	}
	segments := strings.Split(path, ".")
	keys := make([]any, len(segments))
	for i, s := range segments {
		if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
			keys[i] = n
			continue
		}
		keys[i] = s
	}

	node := jsoniter.Get(data, keys...)
	if err := node.LastError(); err != nil {
		return nil, errors.Wrapf(err, "path %q", path)
	}
	switch node.ValueType() {
	case jsoniter.ArrayValue, jsoniter.ObjectValue:
		return []byte(node.ToString()), nil
	case jsoniter.InvalidValue:
		return nil, errors.Errorf("path %q not found", path)
	}
	return nil, errors.Wrapf(errNotCollection, "path %q", path)
}

// loadStrings decodes data and builds a text collection from it. Every
// non-string value is reported.
func loadStrings(data []byte, opts ...collections.Option[string]) (*collections.Collection[string], error) {
	doc, err := collections.FromJSON[any](data)
	if err != nil {
		return nil, err
	}
	return collections.NewStrings(doc, opts...)
}

// keyArg parses a key given on the command line: canonical integers are
// index keys, everything else is a name.
func keyArg(s string) collections.Key {
	return collections.Name(s)
}

// keyValue returns the JSON form of a key: a number for indexes, a string for
// names.
func keyValue(k collections.Key) any {
	if i, ok := k.Int(); ok {
		return i
	}
	return k.String()
}
