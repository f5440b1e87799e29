package params

import "fmt"

// EnvLookup reads one variable from an environment-like string store.
// os.LookupEnv satisfies it; tests can substitute a map-backed lookup.
type EnvLookup func(key string) (string, bool)

// EnvVar enables a parameter as an environment variable. The uppercase
// version of the parameter name, prefixed with the group name, is used as
// the variable name unless overridden.
type EnvVar struct {
	// Name replaces the parameter name as the variable name. The group
	// prefix still applies unless NoPrefix is set.
	Name string

	// NoPrefix suppresses the group name prefix.
	NoPrefix bool
}

// EnvName constructs the environment variable name from the parameter name
// and group.
func (e *EnvVar) EnvName(name, group string) string {
	return deriveName(name, e.Name, group, !e.NoPrefix, true)
}

// lookup retrieves the environment value, applying the parameter converter
// to a found value. A variable that is set but empty is still found.
func (e *EnvVar) lookup(p *Parameter, env EnvLookup) (any, bool, error) {
	name := e.EnvName(p.Name, p.Group)

	raw, found := env(name)
	if !found {
		return nil, false, nil
	}

	if p.Convert != nil {
		value, err := p.Convert(raw)
		if err != nil {
			return nil, false, fmt.Errorf("environment variable %s: %w", name, err)
		}
		return value, true, nil
	}

	return raw, true, nil
}
