// Package config 提供 apris 命令行的应用配置。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithConfigPaths 选项设置，默认见 DefaultPaths
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import (
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

// AppName 应用名称，用于生成默认配置路径。
const AppName = "apris"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "APRIS_"

// Config 应用配置。
type Config struct {
	Engine apris.Settings `json:"engine" desc:"展开引擎配置"`
	Banks  BanksConfig    `json:"banks" desc:"字符串库配置"`
	Log    LogConfig      `json:"log" desc:"日志配置"`
}

// BanksConfig 字符串库配置。
//
//nolint:tagliatelle
type BanksConfig struct {
	File  string `json:"file" desc:"字符串库文件 (YAML/JSON)"`
	NoEnv bool   `json:"no-env" desc:"禁用字符串库文件中的环境变量展开"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level" desc:"日志级别: debug / info / warn / error"`
	Format string `json:"format" desc:"日志格式: text / json"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Engine: apris.DefaultSettings(),
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// EngineConfig 将 engine 配置解析为 [apris.Config]。
func (c *Config) EngineConfig() (apris.Config, error) {
	return c.Engine.Config()
}
