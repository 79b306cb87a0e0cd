package definition

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Ext is the suffix of definition files.
const Ext = ".floatbar.yaml"

// Load reads a definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	if def.Version == "" {
		def.Version = "1"
	}
	return &def, nil
}

// LoadDir loads every definition file in dir.
func LoadDir(dir string) ([]*Definition, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, fmt.Errorf("globbing definition files: %w", err)
	}
	var defs []*Definition
	for _, path := range matches {
		def, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Find returns the first definition file in dir, or "".
func Find(dir string) string {
	matches, _ := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}
