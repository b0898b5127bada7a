package renderer

import (
	"io"

	"github.com/luau-tools/opfreq/analyzer"
)

// Renderer defines the interface for rendering analysis reports in different formats.
type Renderer interface {
	// Render writes the report in the desired format to the provided writer.
	Render(report *analyzer.Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
