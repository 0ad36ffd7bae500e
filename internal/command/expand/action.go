package expand

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	_, a, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	bank := cmd.Int("bank")
	if bank < 0 {
		bank = a.CurrentBank()
	}

	var opts []apris.ProcessOption
	if offset := cmd.Int("offset"); offset != 0 {
		opts = append(opts, apris.WithOffset(offset))
	}
	if cmd.Bool("no-alt") {
		opts = append(opts, apris.WithoutAlt())
	}

	out := cmd.Root().Writer
	diag := io.Discard
	if cmd.Bool("diagnostics") {
		diag = cmd.Root().ErrWriter
	}

	expandOne := func(template string) error {
		res, err := a.ProcessReport(bank, template, opts...)
		if err != nil && !errors.Is(err, apris.ErrRecursionLimit) {
			return err
		}
		if _, werr := fmt.Fprintln(out, res.Text); werr != nil {
			return werr
		}
		for _, d := range res.Diagnostics {
			_, _ = fmt.Fprintf(diag, "! %s\n", d)
		}

		return err
	}

	if cmd.Args().Present() {
		for _, template := range cmd.Args().Slice() {
			if err := expandOne(template); err != nil {
				return err
			}
		}

		return nil
	}

	scanner := bufio.NewScanner(cmd.Root().Reader)
	for scanner.Scan() {
		if err := expandOne(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}
