package params

// ArgBinding associates a parameter with the command line. It is a closed
// set: Argument covers positional arguments and Option covers options.
// A binding knows how to register itself with the set's command-line parser
// and how to retrieve its value back out after parsing.
type ArgBinding interface {
	register(p *Parameter, s *ParameterSet) error
	lookup(p *Parameter, ns *namespace) (any, bool, error)
	spec() *Argument
	groupTag() string
}

// Argument enables a parameter as a command line positional argument.
// The zero value uses the parameter name, prefixed with the group name.
type Argument struct {
	// Name replaces the parameter name as the argument name. The group
	// prefix still applies unless NoPrefix is set.
	Name string

	// NoPrefix suppresses the group name prefix.
	NoPrefix bool

	// Dest overrides the name under which the parsed value is retrieved.
	Dest string

	// Help is the usage text for this argument. When set it takes
	// precedence over the parameter help text.
	Help string

	// Default overrides the parameter default value. Argument values have
	// the highest precedence, so this default preempts environment and
	// configuration values as well.
	Default any

	// Convert overrides the parameter converter for this binding.
	Convert Converter
}

// LongName constructs the argument name from the parameter name and group.
func (a *Argument) LongName(name, group string) string {
	return deriveName(name, a.Name, group, !a.NoPrefix, false)
}

// register adds the positional argument to the set. Leftover command line
// tokens are assigned to positional bindings in registration order.
func (a *Argument) register(p *Parameter, s *ParameterSet) error {
	s.positionals = append(s.positionals, p)
	return nil
}

// lookup retrieves the positional value bound during collection, using the
// derived name or the Dest override.
func (a *Argument) lookup(p *Parameter, ns *namespace) (any, bool, error) {
	key := a.Dest
	if key == "" {
		key = a.LongName(p.Name, p.Group)
	}

	value, found := ns.positionals[key]
	return value, found, nil
}

func (a *Argument) spec() *Argument { return a }

func (a *Argument) groupTag() string { return "" }

// converter picks the binding converter when present, else the parameter's.
func (a *Argument) converter(p *Parameter) Converter {
	if a.Convert != nil {
		return a.Convert
	}
	return p.Convert
}
