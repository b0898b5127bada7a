// Package extractor pulls opcode mnemonics out of textual disassembly.
package extractor

import (
	"regexp"
	"strings"
)

var (
	// Regular expressions for classifying disassembly lines.
	// The listing shape is the one emitted by luau-compile --text: an
	// optional jump-target label ("L12:") followed by an upper-case mnemonic.
	labelRegex  = regexp.MustCompile(`^L\d+:\s*`)
	opcodeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]*\b`)
)

// Extract counts opcode occurrences in one file's disassembly listing.
// Lines that carry no mnemonic after label stripping (blank lines, pure
// labels, operand continuations, section headers) contribute nothing.
func Extract(disassembly string) map[string]int {
	counts := make(map[string]int)
	// Split rather than scan: constant dumps in compiler output can exceed
	// any fixed token size, and a line must never be silently dropped.
	for _, raw := range strings.Split(disassembly, "\n") {
		line := strings.TrimSpace(raw)
		line = labelRegex.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		if opcode := opcodeRegex.FindString(line); opcode != "" {
			counts[opcode]++
		}
	}
	return counts
}
