package params

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// ConfigBinding controls whether a parameter reads from the configuration
// file. The zero value disables the configuration source. UseConfig reads
// from the parameter's own group section (or the default section), and
// SectionFrom delegates the section name to another parameter's resolved
// value.
type ConfigBinding struct {
	enabled bool
	section *Parameter
}

// UseConfig enables the configuration file source for a parameter.
func UseConfig() ConfigBinding {
	return ConfigBinding{enabled: true}
}

// SectionFrom enables the configuration file source with the section name
// taken from another parameter's resolved value, enabling runtime-selected
// sections. Delegation is single-level: the section parameter may not
// itself delegate.
func SectionFrom(p *Parameter) ConfigBinding {
	return ConfigBinding{enabled: true, section: p}
}

// Parameter describes a single application parameter and how to obtain its
// value from the command line, the environment, the configuration file,
// and the compiled default, in that order of precedence. A Parameter is
// defined once, added to a ParameterSet, and immutable thereafter.
type Parameter struct {
	// Name is the required parameter base name.
	Name string

	// Group is prepended to the base name with a '_' separator to form the
	// full name. It also serves as the default argument and environment
	// name prefix and as the configuration file section name.
	Group string

	// Arg binds the parameter to a command line positional argument
	// (Argument) or option (Option).
	Arg ArgBinding

	// Env binds the parameter to an environment variable.
	Env *EnvVar

	// Config controls the configuration file source.
	Config ConfigBinding

	// Convert transforms a found string value into its typed form. Nil
	// keeps the original string.
	Convert Converter

	// Default is the compiled default value, used when no source supplies
	// a value. A binding default overrides it.
	Default any

	// Help is the usage text. Binding help text takes precedence, and a
	// resolved default is appended as "(def: <value>)".
	Help string

	normalized bool
}

// FullName returns the parameter name, prefixed with the group name and a
// '_' separator when a group is set.
func (p *Parameter) FullName() string {
	return fullName(p.Name, p.Group)
}

// normalize folds binding-level default and help text into the parameter.
// An argument default outranks the parameter default since argument values
// have the highest precedence, and the display text gains a "(def: ...)"
// suffix when a default exists. Safe to call more than once.
func (p *Parameter) normalize() {
	if p.normalized {
		return
	}
	p.normalized = true

	if p.Arg != nil {
		a := p.Arg.spec()
		if a.Default != nil {
			p.Default = a.Default
		}
		if a.Help != "" {
			p.Help = a.Help
		}
	}

	if p.Help != "" && p.Default != nil {
		p.Help = fmt.Sprintf("%s (def: %v)", p.Help, p.Default)
	}
}

// value resolves the parameter according to source precedence. A present
// but empty value from any source is still found and short-circuits the
// remaining sources; only an absent lookup falls through, terminating in
// the compiled default.
func (p *Parameter) value(ns *namespace, cfg *ini.File, env EnvLookup) (any, error) {
	if p.Arg != nil {
		v, found, err := p.Arg.lookup(p, ns)
		if err != nil {
			return nil, err
		}
		if found {
			return v, nil
		}
	}

	if p.Env != nil {
		v, found, err := p.Env.lookup(p, env)
		if err != nil {
			return nil, err
		}
		if found {
			return v, nil
		}
	}

	if p.Config.enabled {
		v, found, err := p.configValue(ns, cfg, env)
		if err != nil {
			return nil, err
		}
		if found {
			return v, nil
		}
	}

	return p.Default, nil
}

// configValue looks the parameter up in the configuration file, selecting
// the section by delegation, group, or the parser's default section.
func (p *Parameter) configValue(ns *namespace, cfg *ini.File, env EnvLookup) (any, bool, error) {
	section := ini.DefaultSection

	switch {
	case p.Config.section != nil:
		delegate := p.Config.section
		if delegate.Config.section != nil {
			return nil, false, fmt.Errorf("%w: %s delegates to %s",
				ErrDelegation, p.FullName(), delegate.FullName())
		}

		resolved, err := delegate.value(ns, cfg, env)
		if err != nil {
			return nil, false, err
		}
		if name, ok := resolved.(string); ok && name != "" {
			section = name
		}

	case p.Group != "":
		section = p.Group
	}

	sec, err := cfg.GetSection(section)
	if err != nil || !sec.HasKey(p.Name) {
		return nil, false, nil
	}

	raw := sec.Key(p.Name).String()
	if p.Convert == nil {
		return raw, true, nil
	}

	value, err := p.Convert(raw)
	if err != nil {
		return nil, false, fmt.Errorf("configuration value %s.%s: %w", section, p.Name, err)
	}
	return value, true, nil
}
