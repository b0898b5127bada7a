// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/luau-tools/opfreq/analyzer"
	"github.com/luau-tools/opfreq/compiler"
	"github.com/luau-tools/opfreq/discovery"
)

func CreateDumpCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "dump",
		Usage:       "Prints the raw disassembly of the matched source files",
		Description: "Prints the raw disassembly of the matched source files",
		ArgsUsage:   "<file|directory|glob> ...",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			DebugFlag,
		},
	}
}

var DumpCommand = CreateDumpCommand(DumpDisassembly)

func DumpDisassembly(ctx *cli.Context) error {
	logger := newLogger(ctx.Bool(DebugFlag.Name))

	prof, err := loadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	files, err := discovery.FindFiles(ctx.Args().Slice(), prof)
	if err != nil {
		return fmt.Errorf("error discovering source files: %w", err)
	}
	if len(files) == 0 {
		return analyzer.ErrNoFiles
	}

	comp, err := compiler.NewCompiler(compiler.TypeLuau, prof)
	if err != nil {
		return err
	}

	failed := 0
	for _, file := range files {
		text, err := comp.Disassemble(ctx.Context, file)
		if err != nil {
			logger.Debug("compilation failed", "file", file, "err", err)
			failed++
			continue
		}
		logger.Debug("dumping disassembly", "file", file)
		if _, err := fmt.Fprintf(os.Stdout, "=== %s ===\n%s", file, text); err != nil {
			return err
		}
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprintln(os.Stdout)
		}
	}
	if failed == len(files) {
		return fmt.Errorf("%w: all %d file(s) failed", analyzer.ErrAllFailed, failed)
	}
	if failed > 0 {
		logger.Warnf("%d file(s) failed to compile", failed)
	}
	return nil
}
