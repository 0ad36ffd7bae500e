package envexp

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrRequired 由 ${VAR?msg} / ${VAR:?msg} 在变量缺失时返回。
var ErrRequired = errors.New("envexp: required variable")

// Lookup 变量查找函数，签名与 [os.LookupEnv] 相同。
type Lookup func(name string) (string, bool)

// ExpandEnv 使用进程环境变量展开 text。
func ExpandEnv(text string) (string, error) {
	return Expand(text, os.LookupEnv)
}

// Expand 展开 text 中的 ${...} 引用。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-word} / ${VAR-word} - 回退值
//   - ${VAR:+word} / ${VAR+word} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验，失败时返回 [ErrRequired]
//   - $$ - 字面量 "$"
//
// 带冒号的形式把空值视为未设置。word 中可以嵌套 ${...}。
// 无法识别的表达式以及未闭合的 "${" 原样保留。
func Expand(text string, lookup Lookup) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '$')
		if j < 0 {
			buf.WriteString(text[i:])

			break
		}
		buf.WriteString(text[i : i+j])
		i += j

		rest := text[i:]
		switch {
		case strings.HasPrefix(rest, "$$"):
			buf.WriteByte('$')
			i += 2
		case strings.HasPrefix(rest, "${"):
			end := closingBrace(text, i+2)
			if end < 0 {
				buf.WriteString(rest)
				i = len(text)

				continue
			}
			out, ok, err := expandParam(text[i+2:end], lookup)
			if err != nil {
				return "", err
			}
			if !ok {
				out = text[i : end+1]
			}
			buf.WriteString(out)
			i = end + 1
		default:
			buf.WriteByte('$')
			i++
		}
	}

	return buf.String(), nil
}

// closingBrace 返回与 start 之前的 "${" 匹配的 "}" 位置，不存在时返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case strings.HasPrefix(text[i:], "${"):
			depth++
			i++
		case text[i] == '}' && depth == 0:
			return i
		case text[i] == '}':
			depth--
		}
	}

	return -1
}

// expandParam 展开花括号内的表达式；第二个返回值为 false 表示无法识别。
func expandParam(expr string, lookup Lookup) (string, bool, error) {
	name := leadingName(expr)
	if name == "" {
		return "", false, nil
	}

	op, word, ok := splitOperator(expr[len(name):])
	if !ok {
		return "", false, nil
	}

	val, set := lookup(name)
	if strings.HasPrefix(op, ":") && val == "" {
		set = false
	}

	switch strings.TrimPrefix(op, ":") {
	case "":
		return val, true, nil
	case "-":
		if set {
			return val, true, nil
		}
		out, err := Expand(word, lookup)

		return out, err == nil, err
	case "+":
		if !set {
			return "", true, nil
		}
		out, err := Expand(word, lookup)

		return out, err == nil, err
	default: // "?"
		if set {
			return val, true, nil
		}
		if word == "" {
			word = "parameter null or not set"
		}

		return "", false, fmt.Errorf("%w: %s: %s", ErrRequired, name, word)
	}
}

func leadingName(expr string) string {
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case ch == '_', ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return expr[:i]
		}
	}

	return expr
}

func splitOperator(rest string) (string, string, bool) {
	if rest == "" {
		return "", "", true
	}

	colon := strings.HasPrefix(rest, ":")
	body := strings.TrimPrefix(rest, ":")
	if body == "" || !strings.ContainsRune("-+?", rune(body[0])) {
		return "", "", false
	}

	op := body[:1]
	if colon {
		op = ":" + op
	}

	return op, body[1:], true
}
