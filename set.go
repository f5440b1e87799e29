package params

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// namespace holds the parsed command line state bindings retrieve from:
// the flag set after parsing plus the positional values bound by name.
type namespace struct {
	flags       *pflag.FlagSet
	positionals map[string]any
}

// paramGroup is a named help-display or mutual-exclusion container that
// option bindings join by tag.
type paramGroup struct {
	name        string
	title       string
	description string
	mutex       bool
	required    bool
	members     []*Parameter
}

// ParameterSet manages all of the parameter values for an application. It
// owns the command-line parser, the registry of named parameters, and the
// orchestration that parses argv, loads the configuration source, and
// produces the final resolved value map.
type ParameterSet struct {
	name        string
	description string

	flags       *pflag.FlagSet
	params      map[string]*Parameter
	order       []string
	groups      map[string]*paramGroup
	groupOrder  []string
	positionals []*Parameter

	env  EnvLookup
	out  io.Writer
	exit func(code int)
	help *bool
}

// NewSet creates a parameter set for the named program. The environment
// lookup, help output writer, and exit hook default to os.LookupEnv,
// os.Stdout, and os.Exit; the Builder can substitute all three.
func NewSet(name, description string) *ParameterSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)

	s := &ParameterSet{
		name:        name,
		description: description,
		flags:       flags,
		params:      make(map[string]*Parameter),
		groups:      make(map[string]*paramGroup),
		env:         os.LookupEnv,
		out:         os.Stdout,
		exit:        os.Exit,
	}
	s.help = flags.BoolP("help", "h", false, "show this help message and exit")

	return s
}

// AddHelpGroup adds a named display group. Option bindings reference the
// group name to be listed together in the usage information.
func (s *ParameterSet) AddHelpGroup(name, title, description string) {
	s.addGroup(&paramGroup{name: name, title: title, description: description})
}

// AddMutexGroup adds a named mutual-exclusion group. Members may not
// appear together on a command line; a required group demands exactly one.
func (s *ParameterSet) AddMutexGroup(name string, required bool) {
	s.addGroup(&paramGroup{name: name, title: name, mutex: true, required: required})
}

func (s *ParameterSet) addGroup(g *paramGroup) {
	if _, exists := s.groups[g.name]; !exists {
		s.groupOrder = append(s.groupOrder, g.name)
	}
	s.groups[g.name] = g
}

// AddParameters adds parameters to the set, registering each argument or
// option binding with the command-line parser (or its named group) and
// storing the parameter under its full name. A later parameter with the
// same full name replaces the earlier one in the lookup registry, but a
// colliding option name is an error.
func (s *ParameterSet) AddParameters(parameters ...*Parameter) error {
	for _, p := range parameters {
		if p.Name == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}

		p.normalize()

		if p.Arg != nil {
			var grp *paramGroup
			if tag := p.Arg.groupTag(); tag != "" {
				grp = s.groups[tag]
				if grp == nil {
					return fmt.Errorf("%w: %q", ErrUnknownGroup, tag)
				}
			}

			if err := p.Arg.register(p, s); err != nil {
				return err
			}
			if grp != nil {
				grp.members = append(grp.members, p)
			}
		}

		name := p.FullName()
		if _, exists := s.params[name]; !exists {
			s.order = append(s.order, name)
		}
		s.params[name] = p
	}

	return nil
}

// CollectValues parses the command line, loads the configuration source,
// and resolves every registered parameter. The returned map is keyed by
// full parameter name. Any parse, I/O, or conversion failure aborts the
// call with no partial result.
//
// When the help option is supplied the extended usage information is
// printed and the set's exit hook is invoked with a success status.
func (s *ParameterSet) CollectValues(args []string, source ConfigSource) (Values, error) {
	if err := s.flags.Parse(args); err != nil {
		return nil, err
	}

	if *s.help {
		s.printHelp()
		s.exit(0)
		return nil, nil
	}

	if err := s.checkMutex(); err != nil {
		return nil, err
	}

	ns := &namespace{flags: s.flags, positionals: make(map[string]any)}
	if err := s.bindPositionals(ns); err != nil {
		return nil, err
	}

	cfg, err := s.loadSource(source, ns)
	if err != nil {
		return nil, err
	}

	values := make(Values, len(s.order))
	for _, name := range s.order {
		v, err := s.params[name].value(ns, cfg, s.env)
		if err != nil {
			return nil, err
		}
		values[name] = v
	}

	return values, nil
}

// bindPositionals assigns leftover command line tokens to positional
// bindings in registration order, converting each as it is bound. Tokens
// beyond the declared bindings are a command line syntax error.
func (s *ParameterSet) bindPositionals(ns *namespace) error {
	rest := s.flags.Args()
	if len(rest) > len(s.positionals) {
		return fmt.Errorf("%w: %s",
			ErrUnknownArguments, strings.Join(rest[len(s.positionals):], " "))
	}

	for i, p := range s.positionals {
		if i >= len(rest) {
			break
		}

		a := p.Arg.spec()
		key := a.Dest
		if key == "" {
			key = a.LongName(p.Name, p.Group)
		}

		convert := a.converter(p)
		if convert == nil {
			ns.positionals[key] = rest[i]
			continue
		}

		value, err := convert(rest[i])
		if err != nil {
			return fmt.Errorf("argument %s: %w", key, err)
		}
		ns.positionals[key] = value
	}

	return nil
}

// checkMutex enforces mutual-exclusion groups after parsing, naming every
// conflicting option in the error.
func (s *ParameterSet) checkMutex() error {
	for _, name := range s.groupOrder {
		g := s.groups[name]
		if !g.mutex {
			continue
		}

		var supplied []string
		for _, p := range g.members {
			o, ok := p.Arg.(*Option)
			if !ok {
				continue
			}
			if o.suppliedIn(s.flags, p) {
				supplied = append(supplied, "--"+o.LongName(p.Name, p.Group))
			}
		}

		if len(supplied) > 1 {
			return fmt.Errorf("%w: %s", ErrExclusiveOptions, strings.Join(supplied, " and "))
		}
		if g.required && len(supplied) == 0 {
			var members []string
			for _, p := range g.members {
				if o, ok := p.Arg.(*Option); ok {
					members = append(members, "--"+o.LongName(p.Name, p.Group))
				}
			}
			return fmt.Errorf("%w: one of %s", ErrMissingOption, strings.Join(members, ", "))
		}
	}

	return nil
}
