package banks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

func listAction(_ context.Context, cmd *cli.Command) error {
	_, a, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	store := a.Store()
	for i := range store.BankCount() {
		bank, err := store.Bank(i)
		if err != nil {
			return err
		}

		marker := " "
		if i == a.CurrentBank() {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s bank %d (alt %d, %d strings)\n", marker, i, bank.Alt, len(bank.Strings))
		for j, s := range bank.Strings {
			_, _ = fmt.Fprintf(out, "    %-4d %s\n", j, s)
		}
	}

	if numbers := store.ControlNumbers(); len(numbers) > 0 {
		_, _ = fmt.Fprintln(out, "  control map")
		for _, n := range numbers {
			s, _ := store.ControlMap(n)
			_, _ = fmt.Fprintf(out, "    %-4d %s\n", n, s)
		}
	}

	return nil
}

// entry 是一条可被搜索的字符串及其位置。
type entry struct {
	bank, index int
	text        string
}

// entries 实现 [fuzzy.Source]。
type entries []entry

func (e entries) String(i int) string { return e[i].text }
func (e entries) Len() int            { return len(e) }

func collect(store *apris.Store) entries {
	var all entries
	for i := range store.BankCount() {
		bank, err := store.Bank(i)
		if err != nil {
			continue
		}
		for j, s := range bank.Strings {
			all = append(all, entry{bank: i, index: j, text: s})
		}
	}

	return all
}

func findAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("banks find: exactly one pattern is required")
	}

	_, a, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	all := collect(a.Store())
	matches := fuzzy.FindFrom(cmd.Args().First(), all)
	if limit := cmd.Int("limit"); limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := cmd.Root().Writer
	cfg := a.Config()
	for _, m := range matches {
		e := all[m.Index]
		ref := strconv.FormatInt(int64(e.bank), cfg.Base) + ":" + strconv.FormatInt(int64(e.index), cfg.Base)
		_, _ = fmt.Fprintf(out, "%-9s %s\n", ref, e.text)

		if cmd.Bool("expand") {
			// 按字符串所在的库展开，保持与引用时相同的上下文
			text, err := a.Process(e.bank, e.text)
			if err != nil && !errors.Is(err, apris.ErrRecursionLimit) {
				return err
			}
			_, _ = fmt.Fprintf(out, "%-9s = %s\n", "", text)
		}
	}

	return nil
}
