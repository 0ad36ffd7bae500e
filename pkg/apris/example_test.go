package apris_test

import (
	"errors"
	"fmt"

	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

// Example_process 演示基本的字符串库引用与控制偏移。
func Example_process() {
	a := apris.New()
	_ = a.AddStringsToCurrentBank("Hello", "World")

	out, _ := a.ProcessCurrent("%0 %1")
	fmt.Println(out)

	a.Store().SetControlMap(2, "again")
	out, _ = a.ProcessCurrent("%0 %1", apris.WithOffset(1))
	fmt.Println(out)

	// Output:
	// Hello World
	// World again
}

// Example_alt 演示备选段与全局备选模式。
func Example_alt() {
	a := apris.New()
	_ = a.AddStringsToCurrentBank("he|she|they", "^%0 said hi.")
	_ = a.SetCurrentBankAlt(2)

	out, _ := a.ProcessCurrent("%1")
	fmt.Println(out)

	a.SetGlobalAlt(apris.AltFlip)
	out, _ = a.ProcessCurrent("%0, %0, %0")
	fmt.Println(out)

	// Output:
	// They said hi.
	// he, she, he
}

// Example_banks 演示跨库引用：%库:字符串。
func Example_banks() {
	a := apris.New()
	a.SetNumberOfBanks(2)
	_ = a.Store().AddStrings(0, "The %1:0 sat on the %1:1.")
	_ = a.Store().AddStrings(1, "cat", "mat")

	out, _ := a.Process(0, "%0")
	fmt.Println(out)

	// Output:
	// The cat sat on the mat.
}

// Example_recursion 演示循环引用被截断并报告。
func Example_recursion() {
	a := apris.New()
	_ = a.AddStringsToCurrentBank("loop:%0")

	out, err := a.ProcessCurrent("[%0]")
	fmt.Println(out)
	fmt.Println(errors.Is(err, apris.ErrRecursionLimit))

	// Output:
	// [loop:]
	// true
}
