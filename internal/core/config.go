package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig represents an elxup.yaml file in the extension directory,
// overriding the default patch targets.
type ProjectConfig struct {
	Popup         string `yaml:"popup,omitempty"`
	ContentScript string `yaml:"content_script,omitempty"`
}

// LoadProjectConfig loads elxup.yaml from the given directory. Callers treat
// a missing file (os.IsNotExist) as "use defaults".
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	path := filepath.Join(dir, "elxup.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ProjectConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid elxup.yaml: %w", err)
	}

	return &config, nil
}
