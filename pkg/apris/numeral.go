package apris

import "math"

// maxControlNumber 控制数字的绝对值上限，超出视为格式错误。
const maxControlNumber = math.MaxInt32

// digitValue 返回 r 作为数字的值（0-9, a-z 不区分大小写），非数字返回 -1。
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10
	default:
		return -1
	}
}

func isDigit(r rune, base int) bool {
	d := digitValue(r)

	return d >= 0 && d < base
}

// parseNumeral 从 runes[pos] 开始解析 "[+|-]digits"。
//
// 返回数值、数字之后的位置以及是否成功；失败时位置保持为 pos。
func parseNumeral(runes []rune, pos, base int) (int, int, bool) {
	i := pos
	negative := false
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		negative = runes[i] == '-'
		i++
	}

	start := i
	value := 0
	for i < len(runes) && isDigit(runes[i], base) {
		value = value*base + digitValue(runes[i])
		if value > maxControlNumber {
			return 0, pos, false
		}
		i++
	}
	if i == start {
		return 0, pos, false
	}

	if negative {
		value = -value
	}

	return value, i, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
