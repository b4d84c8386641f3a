package resolve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251220-go-pkg-argm/internal/config"
	"github.com/lwmacct/251220-go-pkg-argm/pkg/argm"
)

const serverConfig = `
server:
  addr: ":7000"
  debug: true
`

// runResolve 在临时目录中执行 resolve 子命令并返回输出
func runResolve(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(serverConfig), 0o644))

	var buf bytes.Buffer
	root := &cli.Command{
		Name:                      "argm",
		Writer:                    &buf,
		DisableSliceFlagSeparator: true,
		Commands:                  []*cli.Command{New()},
	}
	err := root.Run(context.Background(), append([]string{"argm", "resolve"}, args...))
	return buf.String(), err
}

func decodeRows(t *testing.T, out string) map[string]Row {
	t.Helper()

	var rows []Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	byKey := make(map[string]Row, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}
	return byKey
}

// TestResolve_ConfigPriority 配置优先，其次环境变量、调用参数、默认值
func TestResolve_ConfigPriority(t *testing.T) {
	t.Setenv("TESTAPP_TIMEOUT", "45")

	out, err := runResolve(t,
		"--scope", "server",
		"--prefix", "TESTAPP",
		"--param", "addr=:9000",
		"--param", "timeout",
		"--default", "timeout=30",
		"--default", "retries=3",
		"--format", "json",
	)
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 3)

	assert.Equal(t, ":7000", rows["addr"].Value)
	assert.Equal(t, "config", rows["addr"].Source)
	assert.Equal(t, "TESTAPP_ADDR", rows["addr"].EnvName)
	assert.Equal(t, "_addr", rows["addr"].Attr)

	assert.Equal(t, "45", rows["timeout"].Value)
	assert.Equal(t, "env", rows["timeout"].Source)

	assert.EqualValues(t, 3, rows["retries"].Value)
	assert.Equal(t, "default", rows["retries"].Source)
}

// TestResolve_ArgPriority 调用参数优先，位置参数视为未提供值
func TestResolve_ArgPriority(t *testing.T) {
	out, err := runResolve(t,
		"--scope", "server",
		"--priority", "arg",
		"--prefix", "ARGMTEST",
		"--param", "addr=:9000",
		"--protect=false",
		"--format", "json",
		"debug",
	)
	require.NoError(t, err)

	rows := decodeRows(t, out)
	assert.Equal(t, ":9000", rows["addr"].Value)
	assert.Equal(t, "arg", rows["addr"].Source)
	assert.Equal(t, "addr", rows["addr"].Attr)
	assert.Equal(t, true, rows["debug"].Value)
	assert.Equal(t, "config", rows["debug"].Source)
}

// TestResolve_CustomPriority 未列出的来源不被查询
func TestResolve_CustomPriority(t *testing.T) {
	out, err := runResolve(t,
		"--scope", "server",
		"--priority", "default",
		"--param", "addr=:9000",
		"--format", "json",
	)
	require.NoError(t, err)

	rows := decodeRows(t, out)
	assert.Nil(t, rows["addr"].Value)
	assert.Equal(t, "none", rows["addr"].Source)
}

// TestResolve_ConfigFile 显式配置文件路径
func TestResolve_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \":6000\"\n"), 0o644))

	out, err := runResolve(t, "--scope", "server", "--config-file", path, "--format", "json", "addr")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	assert.Equal(t, ":6000", rows["addr"].Value)
}

// TestResolve_MissingConfigFile 指定的文件不存在时报错
func TestResolve_MissingConfigFile(t *testing.T) {
	_, err := runResolve(t, "--scope", "server", "--config-file", "nope.yaml", "addr")
	assert.Error(t, err)
}

// TestResolve_Table 默认表格输出
func TestResolve_Table(t *testing.T) {
	out, err := runResolve(t, "--scope", "server", "addr", "missing")
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, ":7000")
	assert.Contains(t, out, "<none>")
}

// TestResolve_YAML YAML 输出
func TestResolve_YAML(t *testing.T) {
	out, err := runResolve(t, "--scope", "server", "--format", "yaml", "addr")
	require.NoError(t, err)

	assert.Contains(t, out, "key: addr")
	assert.Contains(t, out, "source: config")
}

// TestResolve_CommaInValue 参数值中的逗号不拆分
func TestResolve_CommaInValue(t *testing.T) {
	out, err := runResolve(t,
		"--scope", "server",
		"--priority", "arg",
		"--prefix", "ARGMTEST",
		"--param", "hosts=a,b",
		"--default", "tags=x,y",
		"--format", "json",
	)
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "a,b", rows["hosts"].Value)
	assert.Equal(t, "arg", rows["hosts"].Source)
	assert.Equal(t, "x,y", rows["tags"].Value)
	assert.Equal(t, "default", rows["tags"].Source)
	assert.NotContains(t, rows, "b")
	assert.NotContains(t, rows, "y")
}

func TestResolve_RequiresScope(t *testing.T) {
	_, err := runResolve(t, "addr")
	assert.Error(t, err)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, "xml", nil))
}

func TestOptions_InvalidPriority(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Priority = "bogus"

	_, err := Options(&cfg, nil)
	assert.True(t, errors.Is(err, argm.ErrUnknownSource))
}
