// Package command 提供 apris 各子命令共享的配置 flags、配置加载与引擎构造。
package command

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/config"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/bankfile"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// ConfigFlags 返回与配置项一一对应的 flags（名称见 [config.FlagName]）。
//
// flags 持有解析状态，每个根命令都需要一份新的副本。
func ConfigFlags() []cli.Flag {
	e := Defaults.Engine

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径 (默认搜索 .apris.yaml 等)",
		},
		&cli.StringFlag{Name: "engine-control", Value: e.Control, Usage: "控制字符"},
		&cli.StringFlag{Name: "engine-alt", Value: e.Alt, Usage: "备选字符"},
		&cli.StringFlag{Name: "engine-separation", Value: e.Separation, Usage: "分隔字符"},
		&cli.StringFlag{Name: "engine-capital", Value: e.Capital, Usage: "大写字符"},
		&cli.IntFlag{Name: "engine-base", Value: e.Base, Usage: "控制数字进制 (2-36)"},
		&cli.IntFlag{Name: "engine-lower-limit", Value: e.LowerLimit, Usage: "字符串库索引下限"},
		&cli.IntFlag{Name: "engine-upper-limit", Value: e.UpperLimit, Usage: "字符串库索引上限"},
		&cli.StringFlag{Name: "engine-global-alt", Value: e.GlobalAlt, Usage: "全局备选: normal / flip / 序号"},
		&cli.StringFlag{Name: "engine-locale", Value: e.Locale, Usage: "大小写转换语言 (BCP 47)"},
		&cli.BoolFlag{Name: "engine-capital-enabled", Value: e.CapitalEnabled, Usage: "处理大写字符"},
		&cli.IntFlag{Name: "engine-max-depth", Value: e.MaxDepth, Usage: "最大递归深度"},
		&cli.StringFlag{
			Name:    "banks-file",
			Aliases: []string{"f"},
			Value:   Defaults.Banks.File,
			Usage:   "字符串库文件 (YAML/JSON)",
		},
		&cli.BoolFlag{Name: "banks-no-env", Value: Defaults.Banks.NoEnv, Usage: "禁用字符串库文件中的环境变量展开"},
		&cli.StringFlag{Name: "log-level", Value: Defaults.Log.Level, Usage: "日志级别: debug / info / warn / error"},
		&cli.StringFlag{Name: "log-format", Value: Defaults.Log.Format, Usage: "日志格式: text / json"},
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags。
//
// 指定 --config 时只读取该文件。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	paths := config.DefaultPaths()
	if path := cmd.String("config"); path != "" {
		paths = []string{path}
	}

	return config.Load(
		config.WithCommand(cmd),
		config.WithConfigPaths(paths...),
		config.WithEnvPrefix(config.EnvPrefix),
	)
}

// NewLogger 根据日志配置创建 logger。
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// NewApris 按配置创建 Apris；配置了 banks.file 时从文件加载字符串库。
//
// 字符串库文件中的 engine 段覆盖应用配置中的同名项。
func NewApris(cfg *config.Config, logger *slog.Logger) (*apris.Apris, error) {
	engine, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	opts := []apris.Option{apris.WithConfig(engine), apris.WithLogger(logger)}

	if cfg.Banks.File == "" {
		return apris.New(opts...), nil
	}

	var fileOpts []bankfile.Option
	if cfg.Banks.NoEnv {
		fileOpts = append(fileOpts, bankfile.WithoutEnvExpansion())
	}

	return bankfile.Open(cfg.Banks.File, opts, fileOpts...)
}

// Setup 是子命令 Action 的公共前置步骤：加载配置、设置默认 logger 并创建 Apris。
func Setup(cmd *cli.Command) (*config.Config, *apris.Apris, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, err := NewLogger(cfg.Log, cmd.Root().ErrWriter)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)

	a, err := NewApris(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return cfg, a, nil
}
