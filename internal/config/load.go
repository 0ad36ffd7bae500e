package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/mapcodec"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/envexp"
)

// options 配置加载选项。
type options struct {
	cmd                 *cli.Command
	configPaths         []string
	envPrefix           string
	lookup              envexp.Lookup
	noTemplateExpansion bool
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 示例 (前缀为 "APRIS_")：
//   - APRIS_ENGINE_BASE → engine.base
//   - APRIS_ENGINE_GLOBAL_ALT → engine.global-alt
//   - APRIS_BANKS_FILE → banks.file
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithLookup 替换环境变量来源（默认为 [os.LookupEnv]），同时作用于前缀绑定与 ${VAR} 展开。
func WithLookup(lookup envexp.Lookup) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithoutTemplateExpansion 禁用配置文件的 ${VAR} 展开。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.apris.yaml
//  2. ~/.apris.yaml
//  3. /etc/apris/config.yaml
//  4. config.yaml
//  5. config/config.yaml
func DefaultPaths() []string {
	paths := []string{"." + AppName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName+".yaml"))
	}

	return append(paths, "/etc/"+AppName+"/config.yaml", "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量 → CLI flags。
//
// 未指定 [WithConfigPaths] 时使用 [DefaultPaths]。
// 结果中的 engine 配置已通过校验。
func Load(opts ...Option) (*Config, error) {
	o := &options{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths()
	}

	configMap, err := mapcodec.FromStruct(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	keys := mapcodec.Keys(configMap)

	fileMap, err := o.readFirst()
	if err != nil {
		return nil, err
	}
	mapcodec.Merge(configMap, fileMap)

	if o.envPrefix != "" {
		for envKey, key := range envBindings(o.envPrefix, keys) {
			if val, ok := o.lookup(envKey); ok && val != "" {
				mapcodec.Set(configMap, key, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", key)
			}
		}
	}

	if o.cmd != nil {
		for _, key := range keys {
			if flag := FlagName(key); o.cmd.IsSet(flag) {
				mapcodec.Set(configMap, key, o.cmd.Value(flag))
			}
		}
	}

	var cfg Config
	if err := mapcodec.Decode(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := cfg.EngineConfig(); err != nil {
		return nil, fmt.Errorf("config: engine: %w", err)
	}

	return &cfg, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(opts ...Option) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}

	return cfg
}

// readFirst 读取首个存在的配置文件，全部缺失时返回空 map。
func (o *options) readFirst() (map[string]any, error) {
	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}

		if !o.noTemplateExpansion {
			expanded, err := envexp.Expand(string(content), o.lookup)
			if err != nil {
				return nil, fmt.Errorf("config: expand template in %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := mapcodec.Parse(path, content)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}

		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return fileMap, nil
	}

	slog.Debug("No config file found, using defaults")

	return map[string]any{}, nil
}

// FlagName 返回配置 key 对应的 CLI flag 名称，"." 替换为 "-"。
//
//   - engine.base → engine-base
//   - banks.file → banks-file
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

// envBindings 根据配置 key 生成环境变量映射，"." 与 "-" 转为 "_" 并大写。
func envBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}
