// Package renderer provides a way to render analysis reports in different formats.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/luau-tools/opfreq/analyzer"
)

// TextRenderer formats the report as a ranked frequency table.
type TextRenderer struct {
	showAsm bool
}

// NewTextRenderer creates a new instance of TextRenderer. When showAsm is
// set, each file's disassembly listing is emitted before the table.
func NewTextRenderer(showAsm bool) Renderer {
	return &TextRenderer{showAsm: showAsm}
}

type rankedOpcode struct {
	name  string
	count int
}

// rank orders opcodes by descending count, ties broken by ascending name.
func rank(counts map[string]int) []rankedOpcode {
	ranked := make([]rankedOpcode, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, rankedOpcode{name: name, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	return ranked
}

// Render formats and writes the frequency table to output.
func (r *TextRenderer) Render(report *analyzer.Report, output io.Writer) error {
	emphasis := color.New(color.Bold)
	total := report.TotalOpcodes()

	var table strings.Builder

	if r.showAsm {
		table.WriteString("=== FULL BYTECODE DISASSEMBLY (all files) ===\n")
		for _, file := range report.Files {
			table.WriteString(fmt.Sprintf("=== %s ===\n", file.Path))
			table.WriteString(file.Disassembly)
			if !strings.HasSuffix(file.Disassembly, "\n") {
				table.WriteString("\n")
			}
		}
		table.WriteString("\n")
	}

	table.WriteString(emphasis.Sprint("OPCODE FREQUENCY TABLE (AGGREGATE)") + "\n")
	table.WriteString(strings.Repeat("=", 42) + "\n")
	table.WriteString(fmt.Sprintf("  Analyzed %d files\n\n", report.Succeeded))

	for _, entry := range rank(report.Aggregate) {
		pct := 0.0
		if total > 0 {
			pct = float64(entry.count) / float64(total) * 100
		}
		table.WriteString(fmt.Sprintf("%-20s %5d  %6.1f%%\n", entry.name, entry.count, pct))
	}

	table.WriteString("\n")
	table.WriteString(emphasis.Sprintf("%-20s %5d", "TOTAL", total) + "\n")

	_, err := output.Write([]byte(table.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
