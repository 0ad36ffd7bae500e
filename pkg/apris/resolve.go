package apris

import "fmt"

// frame 标识一个正在展开的替换来源，用于检测循环引用。
type frame struct {
	mapped bool // true 表示控制映射，false 表示字符串库中的字符串
	bank   int  // 控制映射为其展开所在的库
	index  int
}

func (f frame) String() string {
	if f.mapped {
		return fmt.Sprintf("control map %d in bank %d", f.index, f.bank)
	}

	return fmt.Sprintf("bank %d string %d", f.bank, f.index)
}

// resolve 将控制序列解析为已展开的替换文本。
//
// 有效数字 = |number + offset|。落在 [LowerLimit, UpperLimit] 内且目标库存在对应字符串时
// 使用该字符串，否则查找控制映射，都不存在时返回空字符串。
func (e *expander) resolve(seq sequence, bank, pos, depth int) string {
	target := bank
	if seq.compound {
		target = seq.bank
	}
	effective := abs(seq.number + e.offset)

	kind := KindUnresolved
	if effective >= e.cfg.LowerLimit && effective <= e.cfg.UpperLimit {
		switch s, ok := e.src.Lookup(target, effective); {
		case target >= e.src.BankCount():
			kind = KindBankOutOfRange
		case ok:
			return e.descend(frame{bank: target, index: effective}, s, target, depth)
		default:
			kind = KindStringOutOfRange
		}
	}

	// 控制映射的替换文本在引用它的库中继续展开，同一项在不同库中视为不同的帧
	if s, ok := e.src.ControlMap(effective); ok {
		return e.descend(frame{mapped: true, bank: bank, index: effective}, s, bank, depth)
	}

	e.note(Diagnostic{Kind: kind, Bank: target, Number: effective, Pos: pos, Depth: depth})

	return ""
}

// descend 递归展开替换文本，遇到循环引用或超过最大深度时截断为空字符串。
func (e *expander) descend(f frame, s string, bank, depth int) string {
	if e.active[f] || depth+1 > e.cfg.MaxDepth {
		e.truncate(f, bank, depth+1)

		return ""
	}

	e.active[f] = true
	e.chain = append(e.chain, f)
	out := e.process(s, bank, depth+1)
	e.chain = e.chain[:len(e.chain)-1]
	delete(e.active, f)

	return out
}

// truncate 记录递归截断；只保留第一次截断作为返回给调用方的错误。
func (e *expander) truncate(f frame, bank, depth int) {
	e.note(Diagnostic{Kind: KindRecursion, Bank: bank, Number: f.index, Pos: -1, Depth: depth})
	if e.recursion != nil {
		return
	}

	chain := make([]string, 0, len(e.chain)+1)
	for _, c := range e.chain {
		chain = append(chain, c.String())
	}
	chain = append(chain, f.String())

	e.recursion = &RecursionError{Chain: chain, Depth: depth, MaxDepth: e.cfg.MaxDepth}
}
