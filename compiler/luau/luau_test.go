package luau

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luau-tools/opfreq/profile"
)

func TestDisassembleCapturesStdout(t *testing.T) {
	prof := &profile.ToolchainProfile{Command: "echo", Args: []string{"LOADK R0 K0"}}

	out, err := New(prof).Disassemble(context.Background(), "script.luau")
	require.NoError(t, err)
	assert.Equal(t, "LOADK R0 K0 script.luau\n", out)
}

func TestDisassembleFailure(t *testing.T) {
	prof := &profile.ToolchainProfile{Command: "false"}

	_, err := New(prof).Disassemble(context.Background(), "script.luau")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile script.luau")
}

func TestDisassembleMissingCommand(t *testing.T) {
	prof := &profile.ToolchainProfile{Command: "definitely-not-a-real-compiler"}

	_, err := New(prof).Disassemble(context.Background(), "script.luau")
	assert.Error(t, err)
}

func TestDecodeReplacesInvalidUTF8(t *testing.T) {
	// ToValidUTF8 collapses a run of invalid bytes into one replacement rune.
	out := decode([]byte{'L', 'O', 'A', 'D', 'K', ' ', 0xff, 0xfe, 'R', '0'})
	assert.Equal(t, "LOADK �R0", out)
}
