// Package configcmd 提供配置文件相关命令。
package configcmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/internal/config"
)

// Command 配置命令
var Command = NewCommand()

// NewCommand 创建配置命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "配置文件工具",
		Commands: []*cli.Command{
			{
				Name:   "example",
				Usage:  "输出带注释的配置示例",
				Action: exampleAction,
			},
			{
				Name:   "show",
				Usage:  "输出合并后的当前配置",
				Action: showAction,
			},
		},
	}
}

func exampleAction(_ context.Context, cmd *cli.Command) error {
	out, err := config.ExampleYAML(command.Defaults)
	if err != nil {
		return err
	}
	_, err = cmd.Root().Writer.Write(out)

	return err
}

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := config.Render(*cfg, "")
	if err != nil {
		return err
	}
	if _, err := cmd.Root().Writer.Write(out); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
