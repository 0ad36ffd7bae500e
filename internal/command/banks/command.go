// Package banks 提供字符串库查看命令。
package banks

import (
	"github.com/urfave/cli/v3"
)

// Command 字符串库命令
var Command = NewCommand()

// NewCommand 创建字符串库命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "banks",
		Usage: "查看字符串库",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "列出全部字符串库与控制映射",
				Action: listAction,
			},
			{
				Name:      "find",
				Usage:     "模糊搜索字符串库中的字符串",
				ArgsUsage: "<pattern>",
				Action:    findAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Value:   10,
						Usage:   "最多显示的结果数 (0 表示不限)",
					},
					&cli.BoolFlag{
						Name:    "expand",
						Aliases: []string{"e"},
						Usage:   "同时显示展开后的文本",
					},
				},
			},
		},
	}
}
