package bankfile

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/lwmacct/251219-go-pkg-apris/internal/mapcodec"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/envexp"
)

// Document 字符串库文件的内容。
//
//nolint:tagliatelle
type Document struct {
	Current    int            `json:"current"`
	Engine     map[string]any `json:"engine"`
	Banks      []apris.Bank   `json:"banks"`
	ControlMap map[int]string `json:"control-map"`
}

// options 加载选项。
type options struct {
	lookup envexp.Lookup
	noEnv  bool
}

// Option 加载选项函数。
type Option func(*options)

// WithLookup 替换 ${VAR} 展开所用的变量来源（默认为 [os.LookupEnv]）。
func WithLookup(lookup envexp.Lookup) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithoutEnvExpansion 禁用 ${VAR} 展开，保留原始文本。
func WithoutEnvExpansion() Option {
	return func(o *options) {
		o.noEnv = true
	}
}

// Load 读取并解析字符串库文件。
func Load(path string, opts ...Option) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	doc, err := Parse(path, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("bank file %s: %w", path, err)
	}

	slog.Debug("Loaded bank file", "path", path, "banks", len(doc.Banks), "controlMap", len(doc.ControlMap))

	return doc, nil
}

// Parse 解析字符串库文件内容，name 的扩展名决定按 JSON 还是 YAML 解析。
func Parse(name string, content []byte, opts ...Option) (*Document, error) {
	o := &options{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(o)
	}

	if !o.noEnv {
		expanded, err := envexp.Expand(string(content), o.lookup)
		if err != nil {
			return nil, fmt.Errorf("expand variables: %w", err)
		}
		content = []byte(expanded)
	}

	raw, err := mapcodec.Parse(name, content)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var doc Document
	if err := mapcodec.Decode(raw, &doc, bankShorthandHook); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return &doc, nil
}

// bankShorthandHook 允许把字符串库直接写成字符串列表：
//
//	banks:
//	  - ["Hello", "World"]
func bankShorthandHook(_, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeFor[apris.Bank]() {
		return data, nil
	}
	if list, ok := data.([]any); ok {
		return map[string]any{"strings": list}, nil
	}

	return data, nil
}

// Apply 用文档内容替换 a 的字符串库、控制映射与当前库，并覆盖 engine 中出现的配置项。
//
// 文档没有任何字符串库时保留一个空库。
func (d *Document) Apply(a *apris.Apris) error {
	if len(d.Engine) > 0 {
		settings := apris.SettingsFrom(a.Config())
		if err := mapcodec.Decode(d.Engine, &settings); err != nil {
			return fmt.Errorf("decode engine settings: %w", err)
		}
		cfg, err := settings.Config()
		if err != nil {
			return err
		}
		if err := a.SetConfig(cfg); err != nil {
			return err
		}
	}

	store := a.Store()
	store.SetNumberOfBanks(max(len(d.Banks), 1))
	store.ResetAllBanks()
	for i, b := range d.Banks {
		if err := store.AddStrings(i, b.Strings...); err != nil {
			return err
		}
		if err := store.SetBankAlt(i, b.Alt); err != nil {
			return fmt.Errorf("bank %d: %w", i, err)
		}
	}

	store.ClearControlMap()
	for number, s := range d.ControlMap {
		store.SetControlMap(number, s)
	}

	if !a.SetCurrentBank(d.Current) {
		return fmt.Errorf("%w: current bank %d", apris.ErrBankOutOfRange, d.Current)
	}

	return nil
}

// Open 是 Load + Apply 的便捷组合，返回新建的 Apris。
func Open(path string, aprisOpts []apris.Option, opts ...Option) (*apris.Apris, error) {
	doc, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}

	a := apris.New(aprisOpts...)
	if err := doc.Apply(a); err != nil {
		return nil, fmt.Errorf("bank file %s: %w", path, err)
	}

	return a, nil
}
