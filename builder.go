package params

import (
	"fmt"
	"io"
	"os"
)

// ValidatorFunc validates the final resolved value map. It runs after
// collection and should return an error when the combination of values is
// unacceptable.
type ValidatorFunc func(v Values) error

// Builder provides a fluent interface for assembling a parameter set and
// collecting its values in one pass.
type Builder struct {
	set        *ParameterSet
	args       []string
	source     ConfigSource
	discovery  *FileDiscovery
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a builder for the named program. Command-line
// arguments default to os.Args[1:].
func NewBuilder(name, description string) *Builder {
	return &Builder{
		set:  NewSet(name, description),
		args: os.Args[1:],
	}
}

// WithHelpGroup adds a help display group. Groups must be added before the
// parameters that reference them.
func (b *Builder) WithHelpGroup(name, title, description string) *Builder {
	b.set.AddHelpGroup(name, title, description)
	return b
}

// WithMutexGroup adds a mutual-exclusion group. Groups must be added
// before the parameters that reference them.
func (b *Builder) WithMutexGroup(name string, required bool) *Builder {
	b.set.AddMutexGroup(name, required)
	return b
}

// WithParameters adds parameters to the set. A registration error is
// remembered and reported by Collect.
func (b *Builder) WithParameters(parameters ...*Parameter) *Builder {
	if b.err == nil {
		b.err = b.set.AddParameters(parameters...)
	}
	return b
}

// WithArgs sets the command-line arguments to parse.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSource sets the configuration source.
func (b *Builder) WithSource(source ConfigSource) *Builder {
	b.source = source
	return b
}

// WithFileDiscovery locates the configuration file automatically when no
// explicit source is set.
func (b *Builder) WithFileDiscovery(d FileDiscovery) *Builder {
	b.discovery = &d
	return b
}

// WithEnvLookup substitutes the environment lookup, enabling deterministic
// tests without mutating the process environment.
func (b *Builder) WithEnvLookup(env EnvLookup) *Builder {
	if env != nil {
		b.set.env = env
	}
	return b
}

// WithOutput substitutes the help output writer.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	if w != nil {
		b.set.out = w
	}
	return b
}

// WithExitFunc substitutes the process exit hook invoked after help.
func (b *Builder) WithExitFunc(exit func(code int)) *Builder {
	if exit != nil {
		b.set.exit = exit
	}
	return b
}

// WithValidator adds a validation function run over the collected values.
// Validators run in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build returns the assembled parameter set without collecting.
func (b *Builder) Build() (*ParameterSet, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.set, nil
}

// Collect parses the arguments, loads the configuration source (or a
// discovered file), resolves all parameters, and runs the validators.
func (b *Builder) Collect() (Values, error) {
	if b.err != nil {
		return nil, b.err
	}

	source := b.source
	if source == nil && b.discovery != nil {
		if path, found := b.discovery.Find(b.set.env); found {
			source = File(path)
		}
	}

	values, err := b.set.CollectValues(b.args, source)
	if err != nil {
		return nil, err
	}
	if values == nil {
		// Help was requested and the exit hook returned.
		return nil, nil
	}

	for _, validate := range b.validators {
		if err := validate(values); err != nil {
			return nil, fmt.Errorf("parameter validation failed: %w", err)
		}
	}

	return values, nil
}

// MustCollect is like Collect but panics on error.
func (b *Builder) MustCollect() Values {
	values, err := b.Collect()
	if err != nil {
		panic(fmt.Sprintf("parameter collection failed: %v", err))
	}
	return values
}
