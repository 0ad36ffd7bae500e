package expand_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/expand"
	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

const banksYAML = `
current: 0
banks:
  - ["Hello", "World", "%0 %1"]
  - alt: 1
    strings: ["red|blue", "^%1:0 sky"]
control-map:
  100: "#%1"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run 以全新的根命令执行 expand，配置文件指向不存在的路径以隔离本机配置。
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := &cli.Command{
		Name:      "apris",
		Flags:     command.ConfigFlags(),
		Commands:  []*cli.Command{expand.NewCommand()},
		Writer:    &out,
		ErrWriter: &errOut,
		Reader:    strings.NewReader(stdin),
	}

	argv := []string{"apris", "--config", filepath.Join(t.TempDir(), "none.yaml")}
	err := root.Run(context.Background(), append(argv, args...))

	return out.String(), errOut.String(), err
}

func TestExpand(t *testing.T) {
	banks := writeFile(t, "banks.yaml", banksYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "current bank", args: []string{"%0, %1!"}, want: "Hello, World!\n"},
		{name: "several templates", args: []string{"%0", "%1"}, want: "Hello\nWorld\n"},
		{name: "recursive string", args: []string{"[%2]"}, want: "[Hello World]\n"},
		{name: "explicit bank uses its alt", args: []string{"--bank", "1", "%0"}, want: "blue\n"},
		{name: "capital and cross bank reference", args: []string{"--bank", "1", "%1"}, want: "Blue sky\n"},
		{name: "no alt", args: []string{"--bank", "1", "--no-alt", "%0"}, want: "red|blue\n"},
		{name: "offset", args: []string{"--offset", "1", "%0"}, want: "World\n"},
		{name: "control map", args: []string{"%100"}, want: "#World\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--banks-file", banks, "expand"}, tt.args...)
			out, _, err := run(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExpand_EngineFlags(t *testing.T) {
	banks := writeFile(t, "banks.yaml", banksYAML)

	out, _, err := run(t, "", "--banks-file", banks, "--engine-control", "$", "--engine-global-alt", "0",
		"expand", "--bank", "1", "$0 100%")
	require.NoError(t, err)
	assert.Equal(t, "red 100%\n", out)
}

func TestExpand_Stdin(t *testing.T) {
	banks := writeFile(t, "banks.yaml", banksYAML)

	out, _, err := run(t, "%1\n\n^%0:0\n", "--banks-file", banks, "expand")
	require.NoError(t, err)
	assert.Equal(t, "World\n\nHello\n", out)
}

func TestExpand_Diagnostics(t *testing.T) {
	banks := writeFile(t, "banks.yaml", banksYAML)

	out, errOut, err := run(t, "", "--banks-file", banks, "expand", "-d", "a%9b")
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)
	assert.Contains(t, errOut, "! string-out-of-range: bank=0 number=9")

	_, errOut, err = run(t, "", "--banks-file", banks, "expand", "a%9b")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "string-out-of-range")
}

func TestExpand_WithoutBankFile(t *testing.T) {
	out, _, err := run(t, "", "expand", "plain ^text")
	require.NoError(t, err)
	assert.Equal(t, "plain Text\n", out)
}

func TestExpand_Errors(t *testing.T) {
	banks := writeFile(t, "banks.yaml", banksYAML)

	_, _, err := run(t, "", "--banks-file", banks, "expand", "--bank", "5", "%0")
	require.ErrorIs(t, err, apris.ErrBankOutOfRange)

	_, _, err = run(t, "", "--engine-base", "1", "expand", "%0")
	require.ErrorIs(t, err, apris.ErrInvalidConfig)

	_, _, err = run(t, "", "--banks-file", filepath.Join(t.TempDir(), "missing.yaml"), "expand", "%0")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "", "--log-format", "xml", "expand", "%0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestExpand_RecursionKeepsPartialOutput(t *testing.T) {
	banks := writeFile(t, "loop.yaml", "banks: [[\"<%0>\"]]\n")

	out, errOut, err := run(t, "", "--banks-file", banks, "--log-level", "warn", "expand", "x%0y")
	require.ErrorIs(t, err, apris.ErrRecursionLimit)
	assert.Equal(t, "x<>y\n", out)
	assert.Contains(t, errOut, "Expansion truncated")
}
