package definition

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes def as YAML.
func Save(def *Definition, path string) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshaling definition: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing definition file: %w", err)
	}
	return nil
}
