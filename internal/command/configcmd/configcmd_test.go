package configcmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-apris/internal/command"
	"github.com/lwmacct/251219-go-pkg-apris/internal/command/configcmd"
	"github.com/lwmacct/251219-go-pkg-apris/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := &cli.Command{
		Name:      "apris",
		Flags:     command.ConfigFlags(),
		Commands:  []*cli.Command{configcmd.NewCommand()},
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},
	}
	err := root.Run(context.Background(), append([]string{"apris"}, args...))

	return out.String(), err
}

func TestExample(t *testing.T) {
	out, err := run(t, "config", "example")
	require.NoError(t, err)

	want, err := config.ExampleYAML(config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  base: 16\n"), 0o600))

	out, err := run(t, "--config", path, "--log-level", "debug", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "base: 16 #")
	assert.Contains(t, out, "level: 'debug' #")
	assert.NotContains(t, out, "配置示例文件")
}

func TestShow_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  separation: \"%\"\n"), 0o600))

	_, err := run(t, "--config", path, "config", "show")
	require.Error(t, err)
}
