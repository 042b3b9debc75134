package output

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brandcheck/brandcheck/internal/core"
)

// YAMLFormatter renders results as YAML.
type YAMLFormatter struct{}

// Format renders an aggregated result as YAML.
func (f *YAMLFormatter) Format(result *core.AggregatedResult) (string, error) {
	if result == nil {
		return "", nil
	}

	data, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(data), "\n"), nil
}
