package namespace

import (
	"fmt"

	"dario.cat/mergo"
)

// Resolve returns every variable of the given prefix: defaults overlaid by
// the environment key by key. Environment keys without a default are
// included as well. An empty environment value still overrides.
func Resolve(d Defaults, e Environment, prefix string) (map[string]string, error) {
	resolved := d.WithPrefix(prefix)

	if err := mergo.Merge(&resolved, e.WithPrefix(prefix), mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
		return nil, fmt.Errorf("error merging variables with prefix %q: %w", prefix, err)
	}

	return resolved, nil
}
