// Package homepage imports service definitions from a Homepage-format
// services.yaml into the dashboard configuration.
package homepage

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Loader reads and parses a Homepage services.yaml file.
type Loader struct {
	filePath string
}

// NewLoader returns a loader for the given file.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// templateVarRe matches Homepage template variables such as
// {{HOMEPAGE_VAR_ADGUARD_USER}}. They carry secrets we have no use
// for, so they are blanked before parsing.
var templateVarRe = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Load reads and parses the services file.
func (l *Loader) Load() (ServicesConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read services file: %w", err)
	}

	data = templateVarRe.ReplaceAll(data, []byte(`""`))

	var config ServicesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse services yaml: %w", err)
	}

	return config, nil
}
