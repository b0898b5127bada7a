package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luau-tools/opfreq/analyzer"
)

func TestDumpCommandPartialFailureContinues(t *testing.T) {
	srcDir := t.TempDir()
	// grep as the toolchain: files containing "ok" compile, the rest fail.
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.luau"), []byte("LOADK ok\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b.luau"), []byte("nope\n"), 0600))

	prof := writeEchoProfile(t, "grep", "ok")

	err := newTestApp().Run([]string{
		"opfreq", "dump", "--profile", prof, srcDir,
	})
	assert.NoError(t, err)
}

func TestDumpCommandAllFailed(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.luau"), []byte("print(1)\n"), 0600))

	prof := writeEchoProfile(t, "false", "unused")

	err := newTestApp().Run([]string{
		"opfreq", "dump", "--profile", prof, srcDir,
	})
	assert.True(t, errors.Is(err, analyzer.ErrAllFailed))
}

func TestDumpCommandNoFiles(t *testing.T) {
	prof := writeEchoProfile(t, "echo", "LOADK R0 K0")

	err := newTestApp().Run([]string{
		"opfreq", "dump", "--profile", prof, t.TempDir(),
	})
	assert.True(t, errors.Is(err, analyzer.ErrNoFiles))
}
