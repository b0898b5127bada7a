package renderer

import (
	"encoding/json"
	"io"

	"github.com/luau-tools/opfreq/analyzer"
)

// jsonReport is the stable machine-readable schema.
type jsonReport struct {
	FileCount    int                       `json:"file_count"`
	Aggregate    map[string]int            `json:"aggregate"`
	TotalOpcodes int                       `json:"total_opcodes"`
	PerFile      map[string]map[string]int `json:"per_file"`
}

// JSONRenderer renders the report in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(report *analyzer.Report, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonReport{
		FileCount:    report.Succeeded,
		Aggregate:    report.Aggregate,
		TotalOpcodes: report.TotalOpcodes(),
		PerFile:      report.PerFile(),
	})
}

func (r *JSONRenderer) Format() string {
	return "json"
}
