package store

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	for _, test := range []struct {
		in      string
		isIndex bool
		index   int
	}{
		{"7", true, 7},
		{"0", true, 0},
		{"-3", true, -3},
		{"07", false, 0},
		{"+7", false, 0},
		{" 7", false, 0},
		{"-0", false, 0},
		{"", false, 0},
		{"abc", false, 0},
		{"99999999999999999999999", false, 0},
	} {
		k := Name(test.in)
		assert.Equal(t, test.isIndex, k.IsIndex(), test.in)
		if test.isIndex {
			i, _ := k.Int()
			assert.Equal(t, test.index, i, test.in)
		} else {
			assert.Equal(t, test.in, k.String())
		}
	}

	assert.Equal(t, Index(7), Name("7"))
	assert.False(t, NoKey.Valid())
	assert.Equal(t, "<none>", NoKey.String())
}

func TestKeyText(t *testing.T) {
	b, err := Name("user").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "user", string(b))

	var k Key
	require.NoError(t, k.UnmarshalText([]byte("12")))
	assert.Equal(t, Index(12), k)
}

func TestStoreAppendAndNext(t *testing.T) {
	s := FromValues([]string{"a", "b", "c"})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Next())

	assert.Equal(t, Index(3), s.Append("d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Values())

	// Delete never gives the slot back.
	assert.True(t, s.Delete(Index(3)))
	assert.False(t, s.Delete(Index(3)))
	assert.Equal(t, Index(4), s.Append("e"))

	// Pop does, when it removes the highest index.
	e, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, Entry[string]{Key: Index(4), Value: "e"}, e)
	assert.Equal(t, 4, s.Next())
}

func TestStorePutKeepsPosition(t *testing.T) {
	s := New[int]()
	s.Put(Name("x"), 1)
	s.Put(Index(10), 2)
	s.Put(Name("x"), 3)

	assert.Equal(t, []Key{Name("x"), Index(10)}, s.Keys())
	assert.Equal(t, []int{3, 2}, s.Values())
	assert.Equal(t, 11, s.Next())

	s.Put(Index(-5), 4)
	assert.Equal(t, 11, s.Next())
}

func TestStorePopEmpty(t *testing.T) {
	s := New[string]()
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := FromValues([]int{1, 2, 3})
	s.Delete(Index(2))
	c := s.Clone()
	assert.Equal(t, s.Next(), c.Next())

	c.Append(9)
	assert.Equal(t, []int{1, 2}, s.Values())
	assert.Equal(t, []int{1, 2, 9}, c.Values())
	assert.Equal(t, []Key{Index(0), Index(1), Index(3)}, c.Keys())
}

func TestStoreRangeStops(t *testing.T) {
	s := FromValues([]int{1, 2, 3, 4})
	var seen []int
	s.Range(func(_ Key, v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	assert.Equal(t, []int{1, 2}, seen)
}

func TestStoreNilInterfaceValues(t *testing.T) {
	s := FromValues([]any{nil, 1})
	v, ok := s.Get(Index(0))
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestStoreClearAndReplace(t *testing.T) {
	s := FromValues([]int{1, 2})
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Next())

	s.Replace(FromValues([]int{7, 8, 9}))
	assert.Equal(t, []int{7, 8, 9}, s.Values())
	assert.Equal(t, 3, s.Next())
}

func TestReindex(t *testing.T) {
	s := Reindex([]Entry[string]{
		{Key: Index(4), Value: "a"},
		{Key: Name("n"), Value: "b"},
	})
	assert.Equal(t, []Key{Index(0), Index(1)}, s.Keys())
	assert.Equal(t, []string{"a", "b"}, s.Values())
}

func TestRenumber(t *testing.T) {
	s := Renumber([]Entry[string]{
		{Key: Index(4), Value: "a"},
		{Key: Name("n"), Value: "b"},
		{Key: Index(9), Value: "c"},
		{Key: Name("n"), Value: "d"},
	})
	assert.Equal(t, []Key{Index(0), Name("n"), Index(1)}, s.Keys())
	assert.Equal(t, []string{"a", "d", "c"}, s.Values())
}

func TestSplice(t *testing.T) {
	entries := FromEntries([]Entry[string]{
		{Key: Index(0), Value: "a"},
		{Key: Index(5), Value: "b"},
		{Key: Index(9), Value: "c"},
	}).Entries()

	s := Splice(entries, 1, "x")
	assert.Equal(t, []string{"a", "x", "b", "c"}, s.Values())
	assert.Equal(t, []Key{Index(0), Index(1), Index(2), Index(3)}, s.Keys())

	assert.Equal(t, []string{"x", "a", "b", "c"}, Splice(entries, -2, "x").Values())
	assert.Equal(t, []string{"a", "b", "c", "x"}, Splice(entries, 10, "x").Values())
}

func TestConcat(t *testing.T) {
	a := FromEntries([]Entry[int]{{Key: Index(3), Value: 1}, {Key: Name("k"), Value: 2}})
	b := FromEntries([]Entry[int]{{Key: Index(7), Value: 3}, {Key: Name("k"), Value: 4}})

	s := Concat(a.Entries(), b.Entries())
	assert.Equal(t, []Key{Index(0), Name("k"), Index(1)}, s.Keys())
	assert.Equal(t, []int{1, 4, 3}, s.Values())
}

func TestReverse(t *testing.T) {
	s := Reverse(FromValues([]string{"a", "b", "c"}).Entries())
	assert.Equal(t, []Key{Index(2), Index(1), Index(0)}, s.Keys())
	assert.Equal(t, []string{"c", "b", "a"}, s.Values())
}

func TestCombine(t *testing.T) {
	s, err := Combine([]Key{Name("a"), Name("b"), Name("a")}, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []Key{Name("a"), Name("b")}, s.Keys())
	assert.Equal(t, []int{3, 2}, s.Values())

	_, err = Combine([]Key{Name("a")}, []int{1, 2})
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
