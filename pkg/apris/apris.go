package apris

import (
	"errors"
	"log/slog"

	"golang.org/x/text/language"
)

// Apris 持有字符串库、控制映射与配置，并维护“当前字符串库”指针。
//
// Apris 不做任何加锁：只读的 Process 调用可以并发执行，
// 但修改操作必须与 Process 串行化。
type Apris struct {
	store   *Store
	config  Config
	current int
	logger  *slog.Logger
}

// Option Apris 构造选项。
type Option func(*Apris)

// WithLogger 设置诊断日志输出；为 nil 时不记录日志。
func WithLogger(logger *slog.Logger) Option {
	return func(a *Apris) {
		a.logger = logger
	}
}

// WithConfig 设置初始配置。配置在展开时校验。
func WithConfig(cfg Config) Option {
	return func(a *Apris) {
		a.config = cfg
	}
}

// WithStore 使用已有的 Store 代替默认的单库 Store。
func WithStore(store *Store) Option {
	return func(a *Apris) {
		if store != nil {
			a.store = store
		}
	}
}

// New 创建 Apris，默认包含一个空字符串库，当前库为 0。
func New(opts ...Option) *Apris {
	a := &Apris{
		store:  NewStore(1),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// Process 以 bank 为当前字符串库展开 template。
//
// 返回的字符串总是尽可能完整的展开结果；error 仅在 bank 不存在、
// 配置不合法或出现循环引用（[ErrRecursionLimit]）时非 nil。
func (a *Apris) Process(bank int, template string, opts ...ProcessOption) (string, error) {
	res, err := a.ProcessReport(bank, template, opts...)

	return res.Text, err
}

// ProcessCurrent 使用当前字符串库展开 template。
func (a *Apris) ProcessCurrent(template string, opts ...ProcessOption) (string, error) {
	return a.Process(a.current, template, opts...)
}

// ProcessReport 与 [Apris.Process] 相同，但额外返回诊断信息。
func (a *Apris) ProcessReport(bank int, template string, opts ...ProcessOption) (Result, error) {
	res, err := Expand(a.store, a.config, bank, template, opts...)
	a.report(bank, res, err)

	return res, err
}

func (a *Apris) report(bank int, res Result, err error) {
	if a.logger == nil {
		return
	}
	for _, d := range res.Diagnostics {
		a.logger.Debug("Expansion diagnostic",
			slog.String("kind", d.Kind.String()),
			slog.Int("bank", d.Bank),
			slog.Int("number", d.Number),
			slog.Int("pos", d.Pos),
			slog.Int("depth", d.Depth),
		)
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrRecursionLimit):
		a.logger.Warn("Expansion truncated", slog.Int("bank", bank), slog.String("error", err.Error()))
	default:
		a.logger.Error("Expansion failed", slog.Int("bank", bank), slog.String("error", err.Error()))
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 字符串库
// ═══════════════════════════════════════════════════════════════════════════

// Store 返回底层 Store，可直接进行增删改操作。
func (a *Apris) Store() *Store {
	return a.store
}

// SetNumberOfBanks 调整字符串库数量。
func (a *Apris) SetNumberOfBanks(n int) {
	a.store.SetNumberOfBanks(n)
}

// NumberOfBanks 返回字符串库数量。
func (a *Apris) NumberOfBanks() int {
	return a.store.BankCount()
}

// SetCurrentBank 设置当前字符串库；索引不存在时返回 false 且不做修改。
func (a *Apris) SetCurrentBank(bank int) bool {
	if !a.store.IsBankIndexValid(bank) {
		return false
	}
	a.current = bank

	return true
}

// CurrentBank 返回当前字符串库索引。
// CurrentBank 返回当前字符串库的索引。
func (a *Apris) CurrentBank() int {
	return a.current
}

// AddStringToCurrentBank 在当前字符串库末尾追加一个字符串。
func (a *Apris) AddStringToCurrentBank(s string) error {
	return a.store.AddString(a.current, s)
}

// AddStringsToCurrentBank 在当前字符串库末尾依次追加多个字符串。
func (a *Apris) AddStringsToCurrentBank(strs ...string) error {
	return a.store.AddStrings(a.current, strs...)
}

// SetCurrentString 覆盖当前字符串库中的字符串。
func (a *Apris) SetCurrentString(index int, s string) error {
	return a.store.SetString(a.current, index, s)
}

// CurrentString 返回当前字符串库中的原始字符串。
func (a *Apris) CurrentString(index int) (string, error) {
	return a.store.GetString(a.current, index)
}

// SetCurrentBankAlt 设置当前字符串库的备选序号，负数返回 [ErrInvalidAlt]。
func (a *Apris) SetCurrentBankAlt(alt int) error {
	return a.store.SetBankAlt(a.current, alt)
}

// CurrentBankAlt 返回当前字符串库的备选序号。
func (a *Apris) CurrentBankAlt() int {
	alt, _ := a.store.BankAlt(a.current)

	return alt
}

// ═══════════════════════════════════════════════════════════════════════════
// 配置
// ═══════════════════════════════════════════════════════════════════════════

// Config 返回当前配置的副本。
func (a *Apris) Config() Config {
	return a.config
}

// SetConfig 校验并替换整个配置。
func (a *Apris) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg

	return nil
}

// 以下单项设置不做校验，非法组合会在下一次展开时以 [ErrInvalidConfig] 报告。

// SetControlCharacter 设置控制字符。
func (a *Apris) SetControlCharacter(r rune) { a.config.Control = r }

// SetAltCharacter 设置备选字符。
func (a *Apris) SetAltCharacter(r rune) { a.config.Alt = r }

// SetSeparationCharacter 设置分隔字符。
func (a *Apris) SetSeparationCharacter(r rune) { a.config.Separation = r }

// SetCapitalCharacter 设置大写字符。
func (a *Apris) SetCapitalCharacter(r rune) { a.config.Capital = r }

// SetGlobalAlt 设置全局备选模式：[AltNormal]、[AltFlip] 或固定序号。
func (a *Apris) SetGlobalAlt(alt int) { a.config.GlobalAlt = alt }

// SetControlNumberBase 设置控制数字的进制。
func (a *Apris) SetControlNumberBase(base int) { a.config.Base = base }

// SetLocale 设置大小写转换所用的语言环境。
func (a *Apris) SetLocale(tag language.Tag) { a.config.Locale = tag }

// SetMaxDepth 设置最大递归深度。
func (a *Apris) SetMaxDepth(depth int) { a.config.MaxDepth = depth }

// SetProcessCapitalEnabled 开启或关闭大写字符处理，关闭时大写字符原样输出。
func (a *Apris) SetProcessCapitalEnabled(enabled bool) {
	a.config.CapitalEnabled = enabled
}

// SetControlLimits 设置可用于字符串库索引的控制数字范围（闭区间）。
func (a *Apris) SetControlLimits(lower, upper int) {
	a.config.LowerLimit = lower
	a.config.UpperLimit = upper
}
