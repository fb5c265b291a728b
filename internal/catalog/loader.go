package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/fitboard/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// blockFile is the YAML shape of a catalog file.
type blockFile struct {
	Blocks []blockSpec `yaml:"blocks"`
}

type blockSpec struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	DistanceKm float64 `yaml:"distance_km"`
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in catalog embedded in the binary.
func Default() *Catalog {
	c, err := parse(defaultYAML)
	if err != nil {
		// The embedded catalog is compiled in and covered by tests;
		// a parse failure here is a build defect.
		panic(fmt.Sprintf("embedded default catalog is invalid: %v", err))
	}
	return c
}

func parse(data []byte) (*Catalog, error) {
	var file blockFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Blocks) == 0 {
		return nil, fmt.Errorf("catalog defines no blocks")
	}

	blocks := make([]domain.BlockDefinition, 0, len(file.Blocks))
	for _, s := range file.Blocks {
		blocks = append(blocks, domain.BlockDefinition{
			ID:         s.ID,
			Name:       s.Name,
			DistanceKm: s.DistanceKm,
		})
	}
	return New(blocks)
}
