package pairing

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// baseConfig is the YAML document shape accepted by LoadBase:
//
//	pairs:
//	  AU: 2
//	  UA: 2
//	  GC: 3
//	  CG: 3
type baseConfig struct {
	Pairs map[string]int `yaml:"pairs"`
}

// LoadBase reads a base-pair score table from a YAML document and builds
// the corresponding model. Table validation errors wrap the pairing
// sentinels and remain matchable via errors.Is.
func LoadBase(r io.Reader) (*Base, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pairing: read score table: %w", err)
	}

	var cfg baseConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("pairing: parse score table: %w", err)
	}

	model, err := NewBase(cfg.Pairs)
	if err != nil {
		return nil, fmt.Errorf("pairing: invalid score table: %w", err)
	}

	return model, nil
}

// LoadBaseFile is LoadBase over the file at path.
func LoadBaseFile(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pairing: open score table: %w", err)
	}
	defer f.Close()

	return LoadBase(f)
}
