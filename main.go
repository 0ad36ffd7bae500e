package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/banks"
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/configcmd"
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/expand"
	"github.com/lwmacct/251219-go-pkg-apris/internal/config"
)

// version 由 -ldflags "-X main.version=..." 注入。
var version = "dev"

func main() {
	app := &cli.Command{
		Name:    config.AppName,
		Usage:   "基于字符串库的模板展开工具",
		Version: version,
		Flags:   command.ConfigFlags(),
		Commands: []*cli.Command{
			expand.Command,
			banks.Command,
			configcmd.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
