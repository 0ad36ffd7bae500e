// Package apris 提供基于字符串库的模板展开。
//
// 字符串库 (bank) 是一组有序的模板字符串；模板中的控制序列引用库中的其他字符串，
// 被引用的字符串会继续递归展开，适合用少量片段生成多样的自然语言文本。
//
// # 模板语法
//
// 四个标记字符均可配置（见 [Config]），默认值如下：
//
//	%   控制字符     %3 引用当前库第 3 个字符串
//	:   分隔字符     %1:4 引用第 1 个库的第 4 个字符串；%3: 或 %3:: 结束控制序列
//	|   备选字符     he|she|they 按备选序号保留其中一段
//	^   大写字符     ^%0 将替换结果的首字母大写
//
// 控制序列：
//
//	sequence := CONTROL numeral [ SEP numeral ] [ SEP ]
//	numeral  := [ "+" | "-" ] digit+
//
// digit 为当前进制（[Config.Base]，默认 10）下的数字，10 以上使用 a-z（不区分大小写）。
// 首个数字之后："SEP SEP" 作为结束符整体消耗；"SEP numeral" 构成跨库引用；
// 其余情况下单个 SEP 作为结束符消耗。因此 "%0::12" 输出第 0 个字符串后接 "12"。
// 控制字符后不是合法数字时，控制字符按字面输出。
//
// # 解析规则
//
//  1. 有效数字 = |数字 + 控制偏移|（见 [WithOffset]）
//  2. 有效数字在 [LowerLimit, UpperLimit] 内且目标库存在该字符串时，使用该字符串
//  3. 否则查找控制映射（[Store.SetControlMap]）
//  4. 都不存在时替换为空字符串
//
// 替换文本在写入结果前会被完整递归展开。字符串库中的字符串在其所在库中展开，
// 控制映射的文本在引用它的库中展开。
//
// # 备选
//
// 备选组的范围是整个被处理的字符串：先按备选字符切分，保留一段，再处理控制序列。
// 备选序号由 [Config.GlobalAlt] 决定：
//   - [AltNormal]: 使用目标库自身的备选值
//   - [AltFlip]: 单次调用中第 k 个备选组使用 k%2
//   - 非负值: 固定使用该序号
//
// 序号超出段数时回退到第 0 段。
//
// # 大写
//
// 大写字符本身不输出，它使下一个非空输出单元（字面字符或一次完整替换）的首字符
// 按 [Config.Locale] 转为大写。关闭 [Config.CapitalEnabled] 后大写字符按字面输出。
//
// # 错误
//
// 越界、未解析和格式错误都在本地恢复，并记录为 [Diagnostic]。
// 循环引用或超过 [Config.MaxDepth] 时对应替换截断为空，并返回 [*RecursionError]
// （可用 errors.Is(err, [ErrRecursionLimit]) 判断）。
//
// # 快速开始
//
//	a := apris.New()
//	_ = a.AddStringsToCurrentBank("Hello", "World")
//	out, _ := a.ProcessCurrent("%0 %1")
//	// out: "Hello World"
package apris
