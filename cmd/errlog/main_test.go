package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&app{})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "--root", root, "render", "http_status", "404")
	require.NoError(t, err)
	require.Equal(t, "Network error, status code: 404\n", out)

	out, _, err = run(t, "--root", root, "--locale", "zh-CN", "render", "server")
	require.NoError(t, err)
	require.Equal(t, "服务器运行异常\n", out)
}

func TestRender_All(t *testing.T) {
	out, _, err := run(t, "--root", t.TempDir(), "render", "--all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.True(t, strings.HasPrefix(lines[0], "NETWORK"))
}

func TestRender_Errors(t *testing.T) {
	_, _, err := run(t, "--root", t.TempDir(), "render", "teapot")
	require.ErrorContains(t, err, "unknown kind")

	_, _, err = run(t, "--root", t.TempDir(), "render", "http_status", "abc")
	require.ErrorContains(t, err, "invalid code")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "errlog.cue")
	require.NoError(t, os.WriteFile(path, []byte(`locale: "zh-CN"`+"\n"), 0o644))

	out, _, err := run(t, "--config", path, "--root", dir, "render", "parse")
	require.NoError(t, err)
	require.Equal(t, "数据解析异常\n", out)
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "errlog.cue")
	require.NoError(t, os.WriteFile(path, []byte("queueSize: 0\n"), 0o644))

	_, stderr, err := run(t, "--config", path, "--root", dir, "render")
	require.Error(t, err)
	require.Contains(t, stderr, "config issue")
}

func TestCrashDemo_ShowClear(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "--root", root, "crash-demo", "kaboom")
	require.NoError(t, err)
	require.Contains(t, out, "[toast]")
	require.Contains(t, out, "Exception: kaboom\n")

	out, _, err = run(t, "--root", root, "show")
	require.NoError(t, err)
	require.Contains(t, out, "---------------------\npanic: kaboom")

	_, err = os.Stat(filepath.Join(root, "midian", "Log", "errorlog.txt"))
	require.NoError(t, err)

	_, _, err = run(t, "--root", root, "clear")
	require.NoError(t, err)

	out, _, err = run(t, "--root", root, "show")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCrashDemo_Headless(t *testing.T) {
	code := -1
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = os.Exit })

	root := t.TempDir()
	out, stderr, err := run(t, "--root", root, "crash-demo", "--headless", "quiet")
	require.NoError(t, err)
	require.Equal(t, 2, code)
	require.Empty(t, out)
	require.Contains(t, stderr, "uncaught failure in main#1: quiet")

	_, err = os.Stat(filepath.Join(root, "midian", "Log", "errorlog.txt"))
	require.True(t, os.IsNotExist(err))
}
