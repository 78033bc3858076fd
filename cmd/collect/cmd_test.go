package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-typed-collections/collections"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCLI()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSuffix(out.String(), "\n"), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestOperations(t *testing.T) {
	const abc = `["a","b","c"]`
	const obj = `{"x":"1","3":"2"}`
	other := writeFile(t, "other.json", `{"k":"v"}`)
	values := writeFile(t, "values.json", `["1","2","3"]`)

	for _, test := range []struct {
		input    string
		args     []string
		expected string
	}{
		{abc, []string{"count"}, `3`},
		{`[]`, []string{"count"}, `0`},
		{obj, []string{"keys"}, `["x",3]`},
		{obj, []string{"values"}, `["1","2"]`},
		{abc, []string{"first"}, `"a"`},
		{abc, []string{"last"}, `"c"`},
		{`[]`, []string{"last"}, `null`},
		{obj, []string{"get", "x"}, `"1"`},
		{obj, []string{"get", "3"}, `"2"`},
		{obj, []string{"get", "missing"}, `null`},
		{abc, []string{"search", "b"}, `1`},
		{obj, []string{"search", "1"}, `"x"`},
		{abc, []string{"search", "z"}, `null`},
		{`["apple","bob","avocado"]`, []string{"where", "a"}, `["apple","avocado"]`},
		{`["apple","bob","avocado"]`, []string{"reject", "a"}, `{"1":"bob"}`},
		{abc, []string{"except", "0", "2"}, `{"1":"b"}`},
		{abc, []string{"nth", "2"}, `["a","c"]`},
		{`["a","b","c","d"]`, []string{"nth", "2", "1"}, `["b","d"]`},
		{`["a","b"]`, []string{"reverse"}, `{"1":"b","0":"a"}`},
		{obj, []string{"prepend", "p"}, `{"0":"p","x":"1","1":"2"}`},
		{abc, []string{"merge", other}, `{"0":"a","1":"b","2":"c","k":"v"}`},
		{`["x","y","z"]`, []string{"combine", values}, `{"x":"1","y":"2","z":"3"}`},
		{abc, []string{"push", "d", "e"}, `["a","b","c","d","e"]`},
		{abc, []string{"pop"}, `"c"`},
		{`[]`, []string{"pop"}, `null`},
		{abc, []string{"insert", "1", "x"}, `["a","x","b","c"]`},
		{abc, []string{"unset", "1"}, `{"0":"a","2":"c"}`},
		{`{"x":"a","y":"b"}`, []string{"reset"}, `["a","b"]`},
	} {
		t.Run(strings.Join(test.args, "_"), func(t *testing.T) {
			out, err := run(t, test.input, test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}

func TestShuffleSeed(t *testing.T) {
	input := `["a","b","c","d","e","f"]`
	first, err := run(t, input, "shuffle", "--seed=3")
	require.NoError(t, err)
	second, err := run(t, input, "shuffle", "--seed=3")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, v := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.Contains(t, first, `"`+v+`"`)
	}
	assert.True(t, strings.HasPrefix(first, "["))
}

func TestOutputOptions(t *testing.T) {
	out, err := run(t, `["a"]`, "values", "--pretty", "--indent=2")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\"\n]", out)

	out, err = run(t, `["a"]`, "reverse", "--pretty", "--force-object")
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"0\": \"a\"\n}", out)

	out, err = run(t, `["<a>"]`, "reverse", "--escape-html")
	require.NoError(t, err)
	assert.Equal(t, `["\u003ca\u003e"]`, out)
}

func TestInputAndPath(t *testing.T) {
	doc := writeFile(t, "doc.json", `{"users":[{"name":"ada","role":"admin"}],"tags":[["go","db"]]}`)

	out, err := run(t, "", "-i", doc, "--path", "tags.0", "values")
	require.NoError(t, err)
	assert.Equal(t, `["go","db"]`, out)

	out, err = run(t, "", "-i", doc, "--path", "users.0", "keys")
	require.NoError(t, err)
	assert.Equal(t, `["name","role"]`, out)

	_, err = run(t, "", "-i", doc, "--path", "users", "count")
	assert.ErrorIs(t, err, collections.ErrInvalidType)

	_, err = run(t, "", "-i", doc, "--path", "users.0.name", "count")
	assert.ErrorIs(t, err, errNotCollection)

	_, err = run(t, "", "-i", doc, "--path", "users.7", "count")
	assert.Error(t, err)

	_, err = run(t, "", "-i", filepath.Join(t.TempDir(), "missing.json"), "count")
	assert.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	conf := writeFile(t, "collect.yaml", "path: items\nforce-object: true\n")
	t.Setenv("COLLECT_INDENT", "1")

	out, err := run(t, `{"items":["a"]}`, "-f", conf, "reset")
	require.NoError(t, err)
	assert.Equal(t, `{"0":"a"}`, out)

	out, err = run(t, `{"items":["a"]}`, "-f", conf, "--pretty", "reset")
	require.NoError(t, err)
	assert.Equal(t, "{\n \"0\": \"a\"\n}", out)
}

func TestErrors(t *testing.T) {
	_, err := run(t, `["a",1,true]`, "count")
	assert.True(t, errors.Is(err, collections.ErrInvalidType))
	assert.True(t, errors.Is(err, collections.ErrValidation))

	_, err = run(t, `"scalar"`, "count")
	assert.True(t, errors.Is(err, collections.ErrUnsupportedSource))

	_, err = run(t, `["a"]`, "nth", "0")
	assert.True(t, errors.Is(err, collections.ErrInvalidStep))

	_, err = run(t, `["a"]`, "nth", "two")
	assert.Error(t, err)

	_, err = run(t, `["a","b"]`, "combine", writeFile(t, "short.json", `["1"]`))
	assert.True(t, errors.Is(err, collections.ErrLengthMismatch))

	_, err = run(t, `["a"]`, "merge", writeFile(t, "numbers.json", `[1]`))
	assert.True(t, errors.Is(err, collections.ErrInvalidType))

	_, err = run(t, `["a"]`, "get")
	assert.Error(t, err)

	_, err = run(t, `["a"]`, "count", "--log-level=loud")
	assert.Error(t, err)
}
