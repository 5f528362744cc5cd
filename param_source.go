package pydesim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ParamSweepFile is the on-disk shape a TOML or YAML parameter-sweep
// file must follow: a top-level list of parameter bags, one per run.
type ParamSweepFile struct {
	Runs []map[string]any `toml:"runs" yaml:"runs"`
}

// LoadParamSweep reads a parameter sweep from a TOML or YAML file
// (chosen by extension) into the []map[string]any shape SimulateSweep
// expects. This is ambient config-loading glue, not part of the kernel:
// nothing here is reachable from Simulate/SimulateSweep except through
// the caller explicitly invoking it first.
func LoadParamSweep(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pydesim: read param sweep %s: %w", path, err)
	}

	var sweep ParamSweepFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(raw), &sweep); err != nil {
			return nil, fmt.Errorf("pydesim: decode TOML param sweep %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &sweep); err != nil {
			return nil, fmt.Errorf("pydesim: decode YAML param sweep %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("pydesim: unsupported param sweep extension %q", ext)
	}
	return sweep.Runs, nil
}
