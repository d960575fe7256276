package textutil_test

import (
	"fmt"

	"github.com/jonwraymond/policyops/textutil"
)

func ExampleTruncate() {
	fmt.Println(textutil.Truncate("short enough", 100, "policy text"))
	fmt.Println(textutil.Truncate("The quick brown fox jumps over the lazy dog", 19, "policy text"))
	// Output:
	// short enough
	// The quick brown fox
	// [TRUNCATED: policy text exceeded 19 characters]
}
