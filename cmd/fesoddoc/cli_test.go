package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fesoddoc"
	main "github.com/fwojciec/fesoddoc/cmd/fesoddoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"serve", "list", "doc", "index"}

// writeTree writes files relative to root, creating parent directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func run(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	err = main.NewMain().Run(context.Background(), args, bytes.NewReader(nil), stdout, stderr)
	return stdout, stderr, err
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--help")

		require.NoError(t, err)
		for _, cmd := range commands {
			assert.Contains(t, stdout.String(), cmd)
		}
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "Flags:")
	})

	t.Run("no command is an error", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("doc reads through the file services", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"api-index.json":  `[{"name":"Fill","dirName":"fill.md","keywords":["populate"]}]`,
			"docs/en/fill.md": "Fill docs",
			"docs/zh/fill.md": "填充文档",
		})

		stdout, _, err := run(t, "--root", root, "doc", "populate")
		require.NoError(t, err)
		assert.Equal(t, "Documentation for populate: Fill docs\n", stdout.String())

		stdout, _, err = run(t, "--root", root, "doc", "fill", "--lang", "zh")
		require.NoError(t, err)
		assert.Equal(t, "Documentation for fill: 填充文档\n", stdout.String())
	})

	t.Run("index then list round-trips the catalog", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"docs/en/read/simple.md": "---\ntitle: Simple Read\nkeywords: [read]\n---\n\nRead a sheet.\n",
		})

		stdout, _, err := run(t, "--root", root, "index")
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Indexed 1 APIs (updated")
		assert.FileExists(t, filepath.Join(root, fesoddoc.IndexFileName))

		stdout, _, err = run(t, "--root", root, "index")
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "unchanged")

		stdout, _, err = run(t, "--root", root, "list")
		require.NoError(t, err)
		assert.Equal(t, "Simple Read, (读取 read)  (读取 read)  read/simple.md\n", stdout.String())
	})

	t.Run("rejects invalid language list", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, "--root", t.TempDir(), "--languages", "../etc", "list")

		assert.Equal(t, fesoddoc.EINVALID, fesoddoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Hint:")
	})

	t.Run("loads flags from a JSON config file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, map[string]string{
			"api-index.json":  `[{"name":"Fill","dirName":"fill.md"}]`,
			"docs/en/fill.md": "Fill docs",
		})
		config := filepath.Join(t.TempDir(), "fesoddoc.json")
		require.NoError(t, os.WriteFile(config, []byte(`{"root": "`+filepath.ToSlash(root)+`"}`), 0644))

		stdout, _, err := run(t, "--config", config, "doc", "Fill")

		require.NoError(t, err)
		assert.Equal(t, "Documentation for Fill: Fill docs\n", stdout.String())
	})
}
