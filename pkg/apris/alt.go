package apris

import "strings"

// selectAlt 在 s 的备选段中保留一个，丢弃其余。
//
// 备选组的范围是整个被处理的字符串（顶层模板或一次替换文本），不支持嵌套。
// 请求的序号超出段数时回退到第 0 段。
func (e *expander) selectAlt(s string, bank, depth int) string {
	if !strings.ContainsRune(s, e.cfg.Alt) {
		return s
	}

	segments := strings.Split(s, string(e.cfg.Alt))
	idx := e.altIndex(bank)
	if idx >= len(segments) {
		e.note(Diagnostic{Kind: KindAltOutOfRange, Bank: bank, Number: idx, Pos: -1, Depth: depth})
		idx = 0
	}

	return segments[idx]
}

// altIndex 按全局备选模式计算备选序号。
//
// AltFlip 的计数器属于单次顶层调用，每处理一个备选组加一。
func (e *expander) altIndex(bank int) int {
	switch g := e.cfg.GlobalAlt; {
	case g >= 0:
		return g
	case g == AltFlip:
		idx := e.flips % 2
		e.flips++

		return idx
	default:
		alt, _ := e.src.BankAlt(bank)

		return alt
	}
}
