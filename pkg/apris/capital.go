package apris

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// capitalizeFirst 按 caser 的语言规则将 s 的首个字符转为大写，其余部分不变。
func capitalizeFirst(caser cases.Caser, s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	return caser.String(s[:size]) + s[size:]
}
