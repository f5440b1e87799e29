package params

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Option enables a parameter as a command line option. Option names can be
// long or short; the long name defaults to the group-prefixed parameter
// name and the short name is given explicitly.
type Option struct {
	Argument

	// Short is the short option name, normally a single character.
	Short string

	// ShortPrefix is prepended to Short. Useful when option sets are
	// reused and short names would otherwise collide. Note that a combined
	// name longer than one character is registered as a hidden long alias
	// since the command-line parser only supports one-character shorthands.
	ShortPrefix string

	// Group names a help or mutex group previously added to the parameter
	// set. The option is registered with that group instead of the root
	// parser surface.
	Group string

	// Flag marks a value-less option: its presence on the command line
	// stores the string "true", which the converter sees as usual.
	Flag bool
}

// ShortName constructs the short option name with its optional prefix.
// Empty when no short name is defined.
func (o *Option) ShortName() string {
	if o.Short == "" {
		return ""
	}
	return o.ShortPrefix + o.Short
}

// register declares the option with the set's command-line parser, using
// the binding converter (or the parameter converter) as the value parser.
func (o *Option) register(p *Parameter, s *ParameterSet) error {
	long := o.LongName(p.Name, p.Group)
	if s.flags.Lookup(long) != nil {
		return fmt.Errorf("%w: --%s", ErrDuplicateOption, long)
	}

	value := &flagValue{convert: o.converter(p)}
	short := o.ShortName()

	shorthand := ""
	if len(short) == 1 {
		if s.flags.ShorthandLookup(short) != nil {
			return fmt.Errorf("%w: -%s", ErrDuplicateOption, short)
		}
		shorthand = short
	}

	s.flags.VarP(value, long, shorthand, p.Help)
	if o.Flag {
		s.flags.Lookup(long).NoOptDefVal = "true"
	}

	// A prefixed short name exceeds pflag's one-character shorthand limit;
	// expose it as a hidden alias sharing the same value.
	if len(short) > 1 {
		if s.flags.Lookup(short) != nil {
			return fmt.Errorf("%w: --%s", ErrDuplicateOption, short)
		}
		s.flags.Var(value, short, p.Help)
		alias := s.flags.Lookup(short)
		alias.Hidden = true
		if o.Flag {
			alias.NoOptDefVal = "true"
		}
	}

	return nil
}

// lookup retrieves the parsed option value. The option's own flag (and its
// hidden short alias) is consulted first; a Dest override then shares
// storage with whatever else parses under that name, option or positional.
// An option that was not supplied is absent, never a default: defaults are
// folded into the parameter at registration time.
func (o *Option) lookup(p *Parameter, ns *namespace) (any, bool, error) {
	if v, found := suppliedValue(ns.flags, o.LongName(p.Name, p.Group)); found {
		return v, true, nil
	}
	if short := o.ShortName(); len(short) > 1 {
		if v, found := suppliedValue(ns.flags, short); found {
			return v, true, nil
		}
	}

	if o.Dest != "" {
		if v, found := suppliedValue(ns.flags, o.Dest); found {
			return v, true, nil
		}
		if v, found := ns.positionals[o.Dest]; found {
			return v, true, nil
		}
	}

	return nil, false, nil
}

// suppliedValue returns the parsed value of the named flag when it was
// given on the command line.
func suppliedValue(fs *pflag.FlagSet, name string) (any, bool) {
	flag := fs.Lookup(name)
	if flag == nil || !flag.Changed {
		return nil, false
	}

	if fv, ok := flag.Value.(*flagValue); ok {
		return fv.value, true
	}
	return flag.Value.String(), true
}

// suppliedIn reports whether the option (or its hidden short alias) was
// given on the parsed command line.
func (o *Option) suppliedIn(fs *pflag.FlagSet, p *Parameter) bool {
	if f := fs.Lookup(o.LongName(p.Name, p.Group)); f != nil && f.Changed {
		return true
	}
	if short := o.ShortName(); len(short) > 1 {
		if f := fs.Lookup(short); f != nil && f.Changed {
			return true
		}
	}
	return false
}

func (o *Option) groupTag() string { return o.Group }

// flagValue adapts a Converter to the pflag.Value interface so option
// values are converted during argument parsing and conversion failures
// surface as parse errors.
type flagValue struct {
	convert Converter
	value   any
	text    string
}

var _ pflag.Value = (*flagValue)(nil)

func (f *flagValue) Set(s string) error {
	f.text = s
	if f.convert == nil {
		f.value = s
		return nil
	}

	v, err := f.convert(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *flagValue) String() string { return f.text }

func (f *flagValue) Type() string { return "value" }
