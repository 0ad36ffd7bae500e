package apris

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
)

// 全局备选模式。非负值表示固定使用该序号的备选。
const (
	AltNormal = -1 // 使用目标字符串库自身的备选值
	AltFlip   = -2 // 每个备选组依次在 0 与 1 之间交替
)

// 默认配置值。
const (
	DefaultControl    = '%'
	DefaultAlt        = '|'
	DefaultSeparation = ':'
	DefaultCapital    = '^'
	DefaultBase       = 10
	DefaultMaxDepth   = 64
)

// Config 展开引擎配置。
//
// Config 是普通值类型，每次展开都会携带一份快照，不存在进程级全局状态。
type Config struct {
	Control    rune // 控制字符，引出一个控制序列
	Alt        rune // 备选字符，分隔同一字符串中的多个备选段
	Separation rune // 分隔字符，连接复合控制序列或结束控制序列
	Capital    rune // 大写字符，使下一个输出单元首字母大写

	Base       int // 控制数字的进制 (2-36)
	LowerLimit int // 可用于字符串库索引的控制数字下限（含）
	UpperLimit int // 可用于字符串库索引的控制数字上限（含）
	GlobalAlt  int // AltNormal、AltFlip 或固定备选序号

	Locale         language.Tag // 大小写转换所用的语言环境
	CapitalEnabled bool         // 是否处理大写字符
	MaxDepth       int          // 最大递归深度
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Control:        DefaultControl,
		Alt:            DefaultAlt,
		Separation:     DefaultSeparation,
		Capital:        DefaultCapital,
		Base:           DefaultBase,
		LowerLimit:     0,
		UpperLimit:     math.MaxInt32,
		GlobalAlt:      AltNormal,
		Locale:         language.Und,
		CapitalEnabled: true,
		MaxDepth:       DefaultMaxDepth,
	}
}

// Validate 检查配置是否可用于展开。
//
// 四个标记字符必须互不相同，且不能是当前进制下的数字或正负号，
// 否则控制序列的边界无法确定。
func (c Config) Validate() error {
	if c.Base < 2 || c.Base > 36 {
		return fmt.Errorf("%w: base %d outside 2..36", ErrInvalidConfig, c.Base)
	}

	markers := []struct {
		name string
		char rune
	}{
		{"control", c.Control},
		{"alt", c.Alt},
		{"separation", c.Separation},
		{"capital", c.Capital},
	}
	for i, m := range markers {
		if m.char == 0 {
			return fmt.Errorf("%w: %s character is unset", ErrInvalidConfig, m.name)
		}
		if m.char == '+' || m.char == '-' || isDigit(m.char, c.Base) {
			return fmt.Errorf("%w: %s character %q collides with base-%d numerals", ErrInvalidConfig, m.name, m.char, c.Base)
		}
		for _, other := range markers[i+1:] {
			if m.char == other.char {
				return fmt.Errorf("%w: %s and %s characters are both %q", ErrInvalidConfig, m.name, other.name, m.char)
			}
		}
	}

	if c.LowerLimit < 0 || c.LowerLimit > c.UpperLimit {
		return fmt.Errorf("%w: control limits [%d, %d]", ErrInvalidConfig, c.LowerLimit, c.UpperLimit)
	}
	if c.GlobalAlt < AltFlip {
		return fmt.Errorf("%w: global alt %d", ErrInvalidConfig, c.GlobalAlt)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}

	return nil
}
