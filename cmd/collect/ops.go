package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-typed-collections/collections"
)

type coll = collections.Collection[string]

// orNull turns a (value, found) pair into the value or nil.
func orNull(v string, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

func operations() []operation {
	return []operation{
		// Reads
		{
			use: "count", short: "Print the number of entries", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return c.Count(), nil },
		},
		{
			use: "keys", short: "Print the keys in order", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) {
				keys := c.Divide().First
				out := make([]any, len(keys))
				for i, k := range keys {
					out[i] = keyValue(k)
				}
				return out, nil
			},
		},
		{
			use: "values", short: "Print the values in order", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return c.Divide().Second, nil },
		},
		{
			use: "first", short: "Print the first value, or null", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return orNull(c.First()), nil },
		},
		{
			use: "last", short: "Print the last value, or null", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return orNull(c.Last()), nil },
		},
		{
			use: "get KEY", short: "Print the value at KEY, or null", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				k := keyArg(args[0])
				return orNull(c.Get(k, ""), c.Exists(k)), nil
			},
		},
		{
			use: "search VALUE", short: "Print the key of the first entry equal to VALUE, or null", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				k, ok := c.Search(args[0])
				if !ok {
					return nil, nil
				}
				return keyValue(k), nil
			},
		},

		// Derivations
		{
			use: "where SUBSTR", short: "Keep the values containing SUBSTR, renumbered", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				return c.Where(func(s string) bool { return strings.Contains(s, args[0]) }), nil
			},
		},
		{
			use: "reject SUBSTR", short: "Drop the values containing SUBSTR, keys kept", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				return c.RemoveWhere(func(s string) bool { return strings.Contains(s, args[0]) }), nil
			},
		},
		{
			use: "except KEY...", short: "Drop the listed keys", args: cobra.MinimumNArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				keys := make([]collections.Key, len(args))
				for i, a := range args {
					keys[i] = keyArg(a)
				}
				return c.Except(keys...), nil
			},
		},
		{
			use: "nth STEP [OFFSET]", short: "Keep every STEP-th value starting at OFFSET", args: cobra.RangeArgs(1, 2),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				step, err := atoi("STEP", args[0])
				if err != nil {
					return nil, err
				}
				offset := 0
				if len(args) == 2 {
					if offset, err = atoi("OFFSET", args[1]); err != nil {
						return nil, err
					}
				}
				return c.Nth(step, offset)
			},
		},
		{
			use: "shuffle", short: "Shuffle the values (see --seed)", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return c.Shuffle(), nil },
		},
		{
			use: "reverse", short: "Reverse the entries, keys kept", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return c.Reverse(), nil },
		},
		{
			use: "prepend VALUE", short: "Put VALUE first", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) { return c.Prepend(args[0]) },
		},
		{
			use: "merge FILE", short: "Append the entries of the JSON document FILE", args: cobra.ExactArgs(1),
			run: func(app *cli, c *coll, args []string) (any, error) {
				other, err := app.loadOther(args[0])
				if err != nil {
					return nil, err
				}
				return c.Merge(other)
			},
		},
		{
			use: "combine FILE", short: "Use the values as keys for the values of FILE", args: cobra.ExactArgs(1),
			run: func(app *cli, c *coll, args []string) (any, error) {
				other, err := app.loadOther(args[0])
				if err != nil {
					return nil, err
				}
				return c.Combine(other)
			},
		},

		// Mutations
		{
			use: "push VALUE...", short: "Append values under the next sequential keys", args: cobra.MinimumNArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				for _, v := range args {
					if _, err := c.Push(v); err != nil {
						return nil, err
					}
				}
				return c, nil
			},
		},
		{
			use: "pop", short: "Print the last value after removing it, or null", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return orNull(c.Pop()), nil },
		},
		{
			use: "insert POSITION VALUE", short: "Insert VALUE at POSITION", args: cobra.ExactArgs(2),
			run: func(_ *cli, c *coll, args []string) (any, error) {
				pos, err := atoi("POSITION", args[0])
				if err != nil {
					return nil, err
				}
				return c.Insert(args[1], pos)
			},
		},
		{
			use: "unset KEY", short: "Remove the entry at KEY, other keys kept", args: cobra.ExactArgs(1),
			run: func(_ *cli, c *coll, args []string) (any, error) { return c.Unset(keyArg(args[0])), nil },
		},
		{
			use: "reset", short: "Renumber the entries 0..n-1", args: cobra.NoArgs,
			run: func(_ *cli, c *coll, _ []string) (any, error) { return c.Reset(), nil },
		},
	}
}
