// Package luau invokes the Luau compiler in textual disassembly mode.
package luau

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/luau-tools/opfreq/profile"
)

// Luau shells out to luau-compile, or whichever command the profile names.
type Luau struct {
	profile *profile.ToolchainProfile
}

func New(prof *profile.ToolchainProfile) *Luau {
	return &Luau{profile: prof}
}

// Disassemble runs the compiler on target and returns its textual output.
func (l *Luau) Disassemble(ctx context.Context, target string) (string, error) {
	args := append([]string{}, l.profile.Args...)
	args = append(args, target)

	//nolint:gosec
	cmd := exec.CommandContext(ctx, l.profile.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to compile %s: %w\nOutput:\n%s", target, err, decode(stderr.Bytes()))
	}
	return decode(stdout.Bytes()), nil
}

// decode converts compiler output to text, substituting bytes that are not
// valid UTF-8 rather than failing on them.
func decode(raw []byte) string {
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
