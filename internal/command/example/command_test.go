package example

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runExample(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := &cli.Command{
		Name:                      "argm",
		Writer:                    &buf,
		DisableSliceFlagSeparator: true,
		Commands:                  []*cli.Command{New()},
	}
	err := root.Run(context.Background(), append([]string{"argm", "example"}, args...))
	return buf.String(), err
}

func TestExample_YAML(t *testing.T) {
	out, err := runExample(t, "--scope", "server", "--default", "addr=:8080", "--default", "retries=3", "--default", "token")
	require.NoError(t, err)

	assert.Contains(t, out, "server:")
	assert.Contains(t, out, `addr: ":8080"`)
	assert.Contains(t, out, "retries: 3")
	assert.Contains(t, out, "token: null")
}

func TestExample_JSON(t *testing.T) {
	out, err := runExample(t, "--scope", "server", "--default", "addr=:8080", "--format", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"server": {"addr": ":8080"}}`, out)
}

func TestExample_CommaInValue(t *testing.T) {
	out, err := runExample(t, "--scope", "server", "--default", "hosts=a,b", "--format", "json")
	require.NoError(t, err)

	assert.JSONEq(t, `{"server": {"hosts": "a,b"}}`, out)
}

func TestExample_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.example.yaml")

	out, err := runExample(t, "--scope", "server", "--default", "addr=:8080", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server:")
}

func TestExample_UnsupportedFormat(t *testing.T) {
	_, err := runExample(t, "--scope", "server", "--format", "ini")
	assert.Error(t, err)
}
