package params

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type paramsFile struct {
	Params map[string]Parameters `toml:"params"`
}

// LoadFile reads named parameter sets from a TOML file and returns them as
// a registry. The expected layout is one table per set:
//
//	[params.plugin]
//	variant = "standard"
//	parent = "core"
//	parent_first = false
//	isolated = true
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %w", err)
	}
	return Load(data)
}

// Load decodes named parameter sets from TOML data.
func Load(data []byte) (*Registry, error) {
	var f paramsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse parameters: %w", err)
	}
	r := NewRegistry()
	for name := range f.Params {
		p := f.Params[name]
		if err := r.Register(name, &p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
