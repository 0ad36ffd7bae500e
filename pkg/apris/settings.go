package apris

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Settings 是 [Config] 的可序列化形式，供配置文件与命令行使用。
//
// 标记字符以单字符字符串表示，全局备选以 "normal" / "flip" / 数字表示。
//
//nolint:tagliatelle
type Settings struct {
	Control        string `json:"control" desc:"控制字符"`
	Alt            string `json:"alt" desc:"备选字符"`
	Separation     string `json:"separation" desc:"分隔字符"`
	Capital        string `json:"capital" desc:"大写字符"`
	Base           int    `json:"base" desc:"控制数字进制 (2-36)"`
	LowerLimit     int    `json:"lower-limit" desc:"字符串库索引下限"`
	UpperLimit     int    `json:"upper-limit" desc:"字符串库索引上限"`
	GlobalAlt      string `json:"global-alt" desc:"全局备选: normal / flip / 序号"`
	Locale         string `json:"locale" desc:"大小写转换语言 (BCP 47)"`
	CapitalEnabled bool   `json:"capital-enabled" desc:"处理大写字符"`
	MaxDepth       int    `json:"max-depth" desc:"最大递归深度"`
}

// DefaultSettings 返回与 [DefaultConfig] 对应的设置。
func DefaultSettings() Settings {
	return SettingsFrom(DefaultConfig())
}

// SettingsFrom 将 Config 转换为可序列化的设置。
func SettingsFrom(c Config) Settings {
	locale := ""
	if c.Locale != language.Und {
		locale = c.Locale.String()
	}

	return Settings{
		Control:        string(c.Control),
		Alt:            string(c.Alt),
		Separation:     string(c.Separation),
		Capital:        string(c.Capital),
		Base:           c.Base,
		LowerLimit:     c.LowerLimit,
		UpperLimit:     c.UpperLimit,
		GlobalAlt:      FormatGlobalAlt(c.GlobalAlt),
		Locale:         locale,
		CapitalEnabled: c.CapitalEnabled,
		MaxDepth:       c.MaxDepth,
	}
}

// Config 将设置解析为 Config 并校验。
func (s Settings) Config() (Config, error) {
	var (
		c   Config
		err error
	)

	chars := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"control", s.Control, &c.Control},
		{"alt", s.Alt, &c.Alt},
		{"separation", s.Separation, &c.Separation},
		{"capital", s.Capital, &c.Capital},
	}
	for _, ch := range chars {
		if *ch.dst, err = parseChar(ch.src); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ch.name, err)
		}
	}

	if c.GlobalAlt, err = ParseGlobalAlt(s.GlobalAlt); err != nil {
		return Config{}, err
	}

	c.Locale = language.Und
	if s.Locale != "" {
		if c.Locale, err = language.Parse(s.Locale); err != nil {
			return Config{}, fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, s.Locale, err)
		}
	}

	c.Base = s.Base
	c.LowerLimit = s.LowerLimit
	c.UpperLimit = s.UpperLimit
	c.CapitalEnabled = s.CapitalEnabled
	c.MaxDepth = s.MaxDepth

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func parseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// ParseGlobalAlt 解析全局备选模式。
//
// 接受 "normal"（或空字符串）、"flip" 以及非负整数。
func ParseGlobalAlt(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return AltNormal, nil
	case "flip":
		return AltFlip, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < AltFlip {
		return 0, fmt.Errorf("%w: global alt %q", ErrInvalidConfig, s)
	}

	return n, nil
}

// FormatGlobalAlt 是 [ParseGlobalAlt] 的逆操作。
func FormatGlobalAlt(alt int) string {
	switch alt {
	case AltNormal:
		return "normal"
	case AltFlip:
		return "flip"
	default:
		return strconv.Itoa(alt)
	}
}
