// Package expand 提供模板展开命令。
package expand

import (
	"github.com/urfave/cli/v3"
)

// Command 展开命令
var Command = NewCommand()

// NewCommand 创建展开命令。
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "展开模板，未给出参数时逐行读取标准输入",
		ArgsUsage: "[template...]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bank",
				Aliases: []string{"b"},
				Value:   -1,
				Usage:   "作为当前库的字符串库 (-1 表示使用字符串库文件中的 current)",
			},
			&cli.IntFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "加到每个控制数字上的偏移量",
			},
			&cli.BoolFlag{
				Name:  "no-alt",
				Usage: "不处理备选字符",
			},
			&cli.BoolFlag{
				Name:    "diagnostics",
				Aliases: []string{"d"},
				Usage:   "将诊断信息输出到标准错误",
			},
		},
	}
}
