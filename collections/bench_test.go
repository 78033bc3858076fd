package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-typed-collections/collections"
)

// makeStrings creates a text collection of size n for benchmarks.
func makeStrings(b *testing.B, n int) *collections.Collection[string] {
	b.Helper()
	items := make([]string, n)
	for i := range items {
		items[i] = "item-" + strconv.Itoa(i)
	}
	c, err := collections.NewStrings(items)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func BenchmarkNewStrings(b *testing.B) {
	items := make([]string, 10_000)
	for i := range items {
		items[i] = strconv.Itoa(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := collections.NewStrings(items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPush(b *testing.B) {
	c := makeStrings(b, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Push("value"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWhere(b *testing.B) {
	c := makeStrings(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Where(func(s string) bool { return len(s)%2 == 0 })
	}
}

func BenchmarkSearch(b *testing.B) {
	c := makeStrings(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Search("item-9999")
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	c := makeStrings(b, 1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Insert("x", 500); err != nil {
			b.Fatal(err)
		}
		c.Pop()
	}
}

func BenchmarkToJSON(b *testing.B) {
	c := makeStrings(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.ToJSON(collections.JSONOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
