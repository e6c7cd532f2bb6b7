package bytefmt_test

import (
	"fmt"

	"github.com/xeptore/bytefmt"
)

func Example() {
	input := "1.23 MB"

	n, err := bytefmt.Parse(input)
	if nil != err {
		panic(err)
	}
	fmt.Println(n)
	fmt.Println(bytefmt.Format(n))

	kb, err := bytefmt.ParseTo(input, bytefmt.KB)
	if nil != err {
		panic(err)
	}
	fmt.Println(kb)
	fmt.Println(bytefmt.FormatTo(n, bytefmt.KB))
	// Output:
	// 1230000
	// 1.23 MB
	// 1230
	// 1230 KB
}

func ExampleFormatTo() {
	fmt.Println(bytefmt.FormatTo(1_245, bytefmt.KB))
	fmt.Println(bytefmt.FormatTo(500, bytefmt.KB))
	fmt.Println(bytefmt.FormatTo(512, bytefmt.KiB))
	// Output:
	// 1.25 KB
	// 0.5 KB
	// 0.5 KiB
}

func ExampleParse() {
	for _, s := range []string{"1.23 KB", "1.23 KiB", "5 KBx"} {
		n, err := bytefmt.Parse(s)
		fmt.Println(n, err)
	}
	// Output:
	// 1230 <nil>
	// 1259 <nil>
	// 0 Parse Error. Invalid byte format.
}
