package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/luau-tools/opfreq/analyzer"
	"github.com/luau-tools/opfreq/analyzer/opcode"
	"github.com/luau-tools/opfreq/compiler"
	"github.com/luau-tools/opfreq/discovery"
	"github.com/luau-tools/opfreq/profile"
	"github.com/luau-tools/opfreq/renderer"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the toolchain profile config file. Default: built-in luau toolchain",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: json, text",
		Required: false,
		Value:    "text",
	}
	ShowAsmFlag = &cli.BoolFlag{
		Name:     "show-asm",
		Usage:    "include the full disassembly of every file before the frequency table",
		Required: false,
	}
	JobsFlag = &cli.IntFlag{
		Name:     "jobs",
		Usage:    "number of concurrent compiler invocations",
		Required: false,
		Value:    1,
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
	DebugFlag = &cli.BoolFlag{
		Name:     "debug",
		Usage:    "enable debug logging",
		Required: false,
	}
)

func CreateAnalyzeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "analyze",
		Usage:       "Tabulates opcode frequencies across the matched source files",
		Description: "Compiles each matched file in disassembly mode and reports how often every opcode appears",
		ArgsUsage:   "<file|directory|glob> ...",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			ShowAsmFlag,
			JobsFlag,
			ReportOutputPathFlag,
			DebugFlag,
		},
	}
}

var AnalyzeCommand = CreateAnalyzeCommand(AnalyzeFrequencies)

func AnalyzeFrequencies(ctx *cli.Context) error {
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
	for _, file := range files {
		if !prof.Recognizes(file) {
			logger.Warn("file may not be a "+prof.Toolchain+" script", "file", file)
		}
	}

	comp, err := compiler.NewCompiler(compiler.TypeLuau, prof)
	if err != nil {
		return err
	}

	format := ctx.String(FormatFlag.Name)
	showAsm := ctx.Bool(ShowAsmFlag.Name)

	opts := []opcode.Option{opcode.WithJobs(ctx.Int(JobsFlag.Name))}
	if showAsm {
		opts = append(opts, opcode.WithListings())
	}
	report, err := opcode.NewAnalyzer(comp, opts...).Analyze(ctx.Context, files)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := writeReport(report, format, showAsm, ctx.Path(ReportOutputPathFlag.Name)); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	if report.Failed > 0 {
		for _, path := range report.FailedPaths {
			logger.Debug("compilation failed", "file", path)
		}
		logger.Warnf("%d file(s) failed to compile", report.Failed)
	}
	return nil
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadProfile(path string) (*profile.ToolchainProfile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadProfile(path)
}

// writeReport outputs the report in the specified format.
func writeReport(report *analyzer.Report, format string, showAsm bool, outputPath string) error {
	var output *os.File
	if outputPath == "" {
		output = os.Stdout
	} else {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		output, err = os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = output.Close()
		}()
	}

	var rendererInstance renderer.Renderer
	switch format {
	case "text":
		rendererInstance = renderer.NewTextRenderer(showAsm)
	case "json":
		rendererInstance = renderer.NewJSONRenderer()
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return rendererInstance.Render(report, output)
}
