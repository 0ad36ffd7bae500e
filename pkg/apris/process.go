package apris

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Result 一次展开的结果。
type Result struct {
	Text        string
	Diagnostics []Diagnostic
}

// ProcessOption 单次展开的选项。
type ProcessOption func(*processOptions)

type processOptions struct {
	offset int
	noAlt  bool
}

// WithOffset 设置控制偏移：解析出的每个控制数字在查找前都会加上该值。
func WithOffset(offset int) ProcessOption {
	return func(o *processOptions) {
		o.offset = offset
	}
}

// WithoutAlt 关闭备选处理，备选字符与所有备选段原样输出。
func WithoutAlt() ProcessOption {
	return func(o *processOptions) {
		o.noAlt = true
	}
}

// Expand 以 bank 为当前字符串库展开 template。
//
// Expand 是纯函数：只读取 src 与 cfg，不做任何修改。
// 只有配置不合法、bank 不存在或出现递归截断时才返回 error；
// 递归截断时 Result 仍包含其余部分的展开结果。
func Expand(src Source, cfg Config, bank int, template string, opts ...ProcessOption) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if bank < 0 || bank >= src.BankCount() {
		return Result{}, fmt.Errorf("%w: %d (have %d)", ErrBankOutOfRange, bank, src.BankCount())
	}

	var o processOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &expander{
		src:        src,
		cfg:        cfg,
		offset:     o.offset,
		processAlt: !o.noAlt,
		upper:      cases.Upper(cfg.Locale),
		active:     make(map[frame]bool),
	}
	text := e.process(template, bank, 0)

	res := Result{Text: text, Diagnostics: e.diags}
	if e.recursion != nil {
		return res, e.recursion
	}

	return res, nil
}

// expander 保存单次顶层展开的状态，调用结束后即丢弃。
type expander struct {
	src        Source
	cfg        Config
	offset     int
	processAlt bool
	upper      cases.Caser

	flips     int // AltFlip 模式下已处理的备选组数量
	active    map[frame]bool
	chain     []frame
	diags     []Diagnostic
	recursion *RecursionError
}

func (e *expander) note(d Diagnostic) {
	e.diags = append(e.diags, d)
}

// process 处理一个字符串：先选择备选段，再扫描控制序列与大写字符。
func (e *expander) process(s string, bank, depth int) string {
	if e.processAlt {
		s = e.selectAlt(s, bank, depth)
	}

	runes := []rune(s)

	var buf strings.Builder
	buf.Grow(len(s))

	capital := false
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case e.cfg.CapitalEnabled && r == e.cfg.Capital:
			capital = true
			i++
		case r == e.cfg.Control:
			seq, next, ok := e.parseSequence(runes, i+1)
			if !ok {
				e.note(Diagnostic{Kind: KindMalformed, Bank: bank, Pos: i, Depth: depth})
				capital = e.emit(&buf, string(r), capital)
				i++

				continue
			}
			capital = e.emit(&buf, e.resolve(seq, bank, i, depth), capital)
			i = next
		default:
			capital = e.emit(&buf, string(r), capital)
			i++
		}
	}

	return buf.String()
}

// emit 写入一个输出单元，返回新的大写状态。
//
// 空单元不消耗待处理的大写标记。
func (e *expander) emit(buf *strings.Builder, unit string, capital bool) bool {
	if unit == "" {
		return capital
	}
	if capital {
		unit = capitalizeFirst(e.upper, unit)
	}
	buf.WriteString(unit)

	return false
}

// sequence 一个已解析的控制序列。
type sequence struct {
	number   int
	bank     int
	compound bool // 为 true 时 bank 有效，表示跨库引用
}

// parseSequence 解析控制字符之后的部分，pos 指向控制字符的下一个位置。
//
// 语法：numeral [SEP numeral] [SEP]；"SEP SEP" 紧跟首个数字时作为结束符整体消耗。
func (e *expander) parseSequence(runes []rune, pos int) (sequence, int, bool) {
	first, i, ok := parseNumeral(runes, pos, e.cfg.Base)
	if !ok {
		return sequence{}, pos, false
	}

	seq := sequence{number: first}
	sep := e.cfg.Separation
	if i >= len(runes) || runes[i] != sep {
		return seq, i, true
	}
	if i+1 < len(runes) && runes[i+1] == sep {
		return seq, i + 2, true
	}

	second, j, ok := parseNumeral(runes, i+1, e.cfg.Base)
	if !ok {
		return seq, i + 1, true
	}
	if j < len(runes) && runes[j] == sep {
		j++
	}

	return sequence{number: second, bank: abs(first), compound: true}, j, true
}
