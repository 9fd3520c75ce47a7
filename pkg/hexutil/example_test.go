package hexutil_test

import (
	"fmt"

	"github.com/joshuapare/pqwire/pkg/hexutil"
)

func ExampleDecode() {
	dst := make([]byte, 5)
	ok := hexutil.Decode(dst, "48656c6c6f", len(dst))
	fmt.Println(ok, string(dst))
	// Output: true Hello
}
