package banks_test

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
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/banks"
)

const banksYAML = `
current: 1
banks:
  - ["Hello", "World"]
  - alt: 1
    strings: ["red|blue", "the %0 sky", "green hills"]
control-map:
  100: "#%1"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(banksYAML), 0o600))

	var out bytes.Buffer
	root := &cli.Command{
		Name:      "apris",
		Flags:     command.ConfigFlags(),
		Commands:  []*cli.Command{banks.NewCommand()},
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},
	}

	argv := []string{"apris", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--banks-file", path, "banks"}
	err := root.Run(context.Background(), append(argv, args...))

	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	want := strings.Join([]string{
		"  bank 0 (alt 0, 2 strings)",
		"    0    Hello",
		"    1    World",
		"* bank 1 (alt 1, 3 strings)",
		"    0    red|blue",
		"    1    the %0 sky",
		"    2    green hills",
		"  control map",
		"    100  #%1",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestFind(t *testing.T) {
	out, err := run(t, "find", "sky")
	require.NoError(t, err)
	assert.Equal(t, "1:1       the %0 sky\n", out)

	out, err = run(t, "find", "--expand", "sky")
	require.NoError(t, err)
	assert.Contains(t, out, "= the blue sky")
}

func TestFind_Limit(t *testing.T) {
	out, err := run(t, "find", "e")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)

	out, err = run(t, "find", "-n", "2", "e")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestFind_RequiresPattern(t *testing.T) {
	_, err := run(t, "find")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern")
}
