package dutbench

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/skawata/dutbench/pkg/trafficgen"
)

// loadTrafficFile reads a YAML traffic override and merges it over the
// built-in defaults. An empty path yields the plain defaults.
func loadTrafficFile(path string) (trafficgen.Traffic, error) {
	if path == "" {
		return trafficgen.Defaults(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read traffic file")
	}

	var override map[string]any
	if err := yaml.Unmarshal(raw, &override); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("traffic file %s is not a mapping: %w", path, typeErr)
		}
		return nil, errors.Wrapf(err, "failed to parse traffic file %s", path)
	}

	return trafficgen.Merge(trafficgen.Defaults(), trafficgen.Traffic(override)), nil
}
