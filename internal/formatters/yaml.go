package formatters

import (
	"fmt"

	"github.com/desertwitch/lst/internal/schema"
	"gopkg.in/yaml.v3"
)

type yamlEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// YAMLFormatter renders the buffer as a YAML sequence of mappings holding the
// display name and the full path of each entry. An empty buffer renders as an
// empty string.
type YAMLFormatter[T schema.Entry] struct{}

// NewYAMLFormatter returns a pointer to a new [YAMLFormatter].
func NewYAMLFormatter[T schema.Entry]() *YAMLFormatter[T] {
	return &YAMLFormatter[T]{}
}

// Format renders the buffer as a YAML document.
func (*YAMLFormatter[T]) Format(buffer []T) (string, error) {
	if len(buffer) == 0 {
		return "", nil
	}

	items := make([]yamlEntry, 0, len(buffer))
	for _, e := range buffer {
		items = append(items, yamlEntry{Name: e.GetName(), Path: e.GetPath()})
	}

	out, err := yaml.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("(formatters-yaml) %w: %w", ErrFormat, err)
	}

	return string(out), nil
}
