// Command collect loads a JSON array or object into a text collection,
// applies one operation and prints the result as JSON.
//
//	echo '["a","b","c"]' | collect nth 2
//	collect -i users.json --path admins push grace
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := NewCLI().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
