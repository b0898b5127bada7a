// Package profile describes the external toolchain used to disassemble scripts.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToolchainProfile represents the configuration for a specific compiler toolchain.
type ToolchainProfile struct {
	Toolchain  string   `yaml:"toolchain"`
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	Extensions []string `yaml:"extensions"`
}

// Default returns the built-in Luau toolchain profile.
func Default() *ToolchainProfile {
	return &ToolchainProfile{
		Toolchain:  "luau",
		Command:    "luau-compile",
		Args:       []string{"--text"},
		Extensions: []string{".luau", ".lua"},
	}
}

// LoadProfile loads a toolchain profile from a YAML file.
func LoadProfile(filename string) (*ToolchainProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	var profile ToolchainProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if profile.Command == "" {
		return nil, fmt.Errorf("profile %s does not set a compiler command", filename)
	}
	if len(profile.Extensions) == 0 {
		profile.Extensions = Default().Extensions
	}
	return &profile, nil
}

// Recognizes reports whether path carries one of the profile's source extensions.
func (p *ToolchainProfile) Recognizes(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(p.Extensions, ext)
}
