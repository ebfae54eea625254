package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/outofforest/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return logger.WithLogger(context.Background(), zap.NewNop())
}

func writeScript(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayFiles(t *testing.T) {
	requireT := require.New(t)

	dir := t.TempDir()
	path := writeScript(t, dir, "letters.yaml", `
steps:
  - op: add
    value: a
  - op: add
    value: b
  - op: insert
    value: x
    index: 1
`)

	out := &bytes.Buffer{}
	requireT.NoError(replayFiles(newContext(), out, 2, []string{path}))
	requireT.Equal("== letters\na\nx\nb\n", out.String())
}

func TestReplayFilesFails(t *testing.T) {
	requireT := require.New(t)

	dir := t.TempDir()
	ok := writeScript(t, dir, "ok.yaml", "steps:\n  - op: add\n    value: a\n")
	failing := writeScript(t, dir, "failing.yaml", "steps:\n  - op: delete\n    index: 0\n")

	out := &bytes.Buffer{}
	err := replayFiles(newContext(), out, 2, []string{ok, failing})
	requireT.Error(err)
	requireT.Contains(err.Error(), "1 of 2 scripts failed")
	requireT.Contains(out.String(), "== ok\na\n")
	requireT.Contains(out.String(), "== failing\n")
}

func TestReplayFilesRejectsInvalidScript(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.yaml", "steps:\n  - op: sort\n")

	err := replayFiles(newContext(), &bytes.Buffer{}, 1, []string{path})
	require.Error(t, err)
}

func TestRootCmdRequiresFiles(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
}

func TestRootCmdReplaysFiles(t *testing.T) {
	requireT := require.New(t)

	path := writeScript(t, t.TempDir(), "numbers.yaml", `
steps:
  - op: add
    value: "1"
  - op: add
    value: "2"
  - op: delete
    index: 0
`)

	out := &bytes.Buffer{}
	cmd := newRootCmd(out)
	cmd.SetArgs([]string{"--workers", "2", path})
	requireT.NotPanics(func() {
		requireT.NoError(cmd.ExecuteContext(context.Background()))
	})
	requireT.Equal("== numbers\n2\n", out.String())
}

func TestRootCmdFailsOnFailingScript(t *testing.T) {
	path := writeScript(t, t.TempDir(), "failing.yaml", "steps:\n  - op: get\n    index: 0\n")

	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}
