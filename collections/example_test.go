package collections_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-typed-collections/collections"
)

func ExampleNewStrings() {
	c, _ := collections.NewStrings([]string{"a", "b", "c"})
	c.Push("d")
	fmt.Println(c.Count(), c)
	// Output: 4 ["a","b","c","d"]
}

func ExampleCollection_Push_rejected() {
	c, _ := collections.New[any]([]any{"a", "b"}, collections.Enforce(collections.TypeOf[string]()))
	_, err := c.Push(42)
	fmt.Println(errors.Is(err, collections.ErrValidation), c.Count())
	// Output: true 2
}

func ExampleCollection_Unset() {
	c, _ := collections.NewStrings([]string{"x", "y", "z"})
	c.Unset(collections.Index(1))
	fmt.Println(c)
	c.Reset()
	fmt.Println(c)
	// Output:
	// {"0":"x","2":"z"}
	// ["x","z"]
}

func ExampleCollection_Nth() {
	c, _ := collections.NewStrings([]string{"a", "b", "c", "d", "e"})
	every, _ := c.Nth(2, 0)
	fmt.Println(every)
	// Output: ["a","c","e"]
}

func ExampleCollection_Insert() {
	c, _ := collections.NewStrings([]string{"a", "b", "c"})
	c.Insert("x", 1)
	fmt.Println(c)
	// Output: ["a","x","b","c"]
}

func ExampleCollection_Where() {
	c, _ := collections.NewStrings([]string{"apple", "bob", "avocado"})
	fmt.Println(c.Where(func(s string) bool { return strings.HasPrefix(s, "a") }))
	fmt.Println(c.RemoveWhere(func(s string) bool { return strings.HasPrefix(s, "a") }))
	// Output:
	// ["apple","avocado"]
	// {"1":"bob"}
}

func ExampleCollection_Merge() {
	c, _ := collections.NewStrings(map[string]string{"name": "ada", "role": "admin"})
	merged, _ := c.Merge(map[string]string{"role": "owner"})
	fmt.Println(merged)
	// Output: {"name":"ada","role":"owner"}
}

func ExampleCollection_Combine() {
	keys, _ := collections.NewStrings([]string{"name", "lang"})
	combined, _ := keys.Combine([]string{"ada", "go"})
	fmt.Println(combined)
	// Output: {"name":"ada","lang":"go"}
}

func ExampleCollection_ToJSON() {
	c, _ := collections.NewStrings([]string{"a", "b"})
	s, _ := c.ToJSON(collections.JSONOptions{Pretty: true, Indent: 2, ForceObject: true})
	fmt.Println(s)
	// Output:
	// {
	//   "0": "a",
	//   "1": "b"
	// }
}

func ExampleFromJSON() {
	c, _ := collections.FromJSON[int]([]byte(`{"b":2,"a":1}`))
	for k, v := range c.Entries() {
		fmt.Println(k, v)
	}
	// Output:
	// b 2
	// a 1
}

func ExampleMap() {
	c, _ := collections.NewStrings([]string{"go", "rust"})
	lengths := collections.Map(c, func(s string, _ collections.Key) int { return len(s) })
	fmt.Println(lengths)
	// Output: [2,4]
}

func ExampleReduce() {
	total := collections.Reduce(collections.Of(1, 2, 3, 4, 5), func(acc, n int, _ collections.Key) int {
		return acc + n
	}, 0)
	fmt.Println(total)
	// Output: 15
}
