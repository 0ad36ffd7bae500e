package apris

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBankOutOfRange 字符串库索引越界。
	ErrBankOutOfRange = errors.New("apris: bank index out of range")
	// ErrStringOutOfRange 字符串索引越界。
	ErrStringOutOfRange = errors.New("apris: string index out of range")
	// ErrInvalidAlt 备选索引为负数。
	ErrInvalidAlt = errors.New("apris: alt must not be negative")
	// ErrRecursionLimit 展开过程中出现循环引用或超过最大深度。
	ErrRecursionLimit = errors.New("apris: recursion limit exceeded")
	// ErrInvalidConfig 配置不合法。
	ErrInvalidConfig = errors.New("apris: invalid config")
)

// Kind 诊断类别。
type Kind int

const (
	KindBankOutOfRange   Kind = iota + 1 // bank-out-of-range
	KindStringOutOfRange                 // string-out-of-range
	KindUnresolved                       // unresolved
	KindMalformed                        // malformed
	KindAltOutOfRange                    // alt-out-of-range
	KindRecursion                        // recursion
)

func (k Kind) String() string {
	switch k {
	case KindBankOutOfRange:
		return "bank-out-of-range"
	case KindStringOutOfRange:
		return "string-out-of-range"
	case KindUnresolved:
		return "unresolved"
	case KindMalformed:
		return "malformed"
	case KindAltOutOfRange:
		return "alt-out-of-range"
	case KindRecursion:
		return "recursion"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Diagnostic 记录一次在展开过程中被就地恢复的问题。
//
// 除循环引用外，所有问题都不会中断展开，只会留下一条诊断。
type Diagnostic struct {
	Kind   Kind
	Bank   int // 发生问题时正在处理的字符串库
	Number int // 控制数字（已加偏移并取绝对值）或备选索引
	Pos    int // 在被处理字符串中的 rune 位置，无意义时为 -1
	Depth  int // 递归深度，顶层为 0
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: bank=%d number=%d pos=%d depth=%d", d.Kind, d.Bank, d.Number, d.Pos, d.Depth)
}

// RecursionError 描述一次被截断的递归展开。
type RecursionError struct {
	Chain    []string // 截断时仍在展开中的引用链，最后一项为被拒绝的引用
	Depth    int
	MaxDepth int
}

func (e *RecursionError) Error() string {
	if e.Depth > e.MaxDepth {
		return fmt.Sprintf("apris: recursion limit exceeded: depth %d > %d: %s",
			e.Depth, e.MaxDepth, strings.Join(e.Chain, " -> "))
	}

	return "apris: recursion limit exceeded: cycle " + strings.Join(e.Chain, " -> ")
}

func (e *RecursionError) Unwrap() error {
	return ErrRecursionLimit
}
