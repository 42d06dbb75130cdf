package curriculum

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	foundationalFile = "data/foundational.yaml"
	reviewFile       = "data/review.yaml"
)

// LoadDefinitions decodes the embedded foundational and review layers.
func LoadDefinitions() (Definitions, error) {
	foundational, err := loadLayer(foundationalFile)
	if err != nil {
		return Definitions{}, err
	}
	review, err := loadLayer(reviewFile)
	if err != nil {
		return Definitions{}, err
	}
	return Definitions{Foundational: foundational, Review: review}, nil
}

func loadLayer(path string) (Layer, error) {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return Layer{}, fmt.Errorf("read %s: %w", path, err)
	}
	layer, err := ParseLayer(data)
	if err != nil {
		return Layer{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return layer, nil
}

// ParseLayer decodes one curriculum layer from YAML. Unknown fields are
// rejected so that typos in curriculum files surface immediately.
func ParseLayer(data []byte) (Layer, error) {
	var layer Layer
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layer); err != nil {
		return Layer{}, err
	}
	return layer, nil
}
