package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	prof := Default()
	assert.Equal(t, "luau", prof.Toolchain)
	assert.Equal(t, "luau-compile", prof.Command)
	assert.Equal(t, []string{"--text"}, prof.Args)
	assert.True(t, prof.Recognizes("script.luau"))
	assert.True(t, prof.Recognizes("script.lua"))
	assert.False(t, prof.Recognizes("script.txt"))
}

func TestLoadProfile(t *testing.T) {
	content := `toolchain: luau
command: /opt/luau/luau-compile
args: ["--text", "-O2"]
extensions: [".luau"]
`
	path := filepath.Join(t.TempDir(), "luau.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	prof, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/luau/luau-compile", prof.Command)
	assert.Equal(t, []string{"--text", "-O2"}, prof.Args)
	assert.True(t, prof.Recognizes("a.luau"))
	assert.False(t, prof.Recognizes("a.lua"))
}

func TestLoadProfileDefaultsExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luau.yaml")
	require.NoError(t, os.WriteFile(path, []byte("command: luau-compile\n"), 0600))

	prof, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".luau", ".lua"}, prof.Extensions)
}

func TestLoadProfileMissingCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "luau.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toolchain: luau\n"), 0600))

	_, err := LoadProfile(path)
	assert.ErrorContains(t, err, "compiler command")
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
