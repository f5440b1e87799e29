package params

import (
	"fmt"
	"os"
	"path/filepath"
)

// Collect resolves a list of parameters in one call, using a throwaway
// parameter set named after the running program. This is the quickest way
// to use the package when no groups or injection are needed.
func Collect(parameters []*Parameter, args []string, source ConfigSource) (Values, error) {
	set := NewSet(filepath.Base(os.Args[0]), "")
	if err := set.AddParameters(parameters...); err != nil {
		return nil, err
	}
	return set.CollectValues(args, source)
}

// MustCollect is like Collect but panics on error.
func MustCollect(parameters []*Parameter, args []string, source ConfigSource) Values {
	values, err := Collect(parameters, args, source)
	if err != nil {
		panic(fmt.Sprintf("parameter collection failed: %v", err))
	}
	return values
}
