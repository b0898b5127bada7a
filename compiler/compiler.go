// Package compiler abstracts the external compiler invoked in disassembly mode.
package compiler

import (
	"context"
	"errors"

	"github.com/luau-tools/opfreq/compiler/luau"
	"github.com/luau-tools/opfreq/profile"
)

// Compiler produces the textual disassembly listing for a single source file.
type Compiler interface {
	// Disassemble compiles target and returns its disassembly text.
	// A non-nil error means the compiler rejected the file; the text is
	// unusable in that case.
	Disassemble(ctx context.Context, target string) (string, error)
}

type Type int64

const (
	TypeLuau Type = iota + 1
)

func NewCompiler(typ Type, prof *profile.ToolchainProfile) (Compiler, error) {
	switch typ {
	case TypeLuau:
		return luau.New(prof), nil
	default:
		return nil, errors.New("compiler not supported")
	}
}
