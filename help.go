package params

import (
	"fmt"
	"io"
)

// printHelp writes the extended usage information: the standard usage
// block, then the recognized environment variables and configuration
// parameters. Presentation only; resolution is not affected.
func (s *ParameterSet) printHelp() {
	w := s.out

	fmt.Fprintf(w, "usage: %s [options]", s.name)
	for _, p := range s.positionals {
		fmt.Fprintf(w, " %s", p.Arg.spec().LongName(p.Name, p.Group))
	}
	fmt.Fprintln(w)

	if s.description != "" {
		fmt.Fprintf(w, "\n%s\n", s.description)
	}

	if len(s.positionals) > 0 {
		fmt.Fprintf(w, "\narguments:\n")
		for _, p := range s.positionals {
			helpLine(w, p.Arg.spec().LongName(p.Name, p.Group), p.Help)
		}
	}

	fmt.Fprintf(w, "\noptions:\n")
	helpLine(w, "-h, --help", "show this help message and exit")
	for _, name := range s.order {
		p := s.params[name]
		if o, ok := p.Arg.(*Option); ok && o.Group == "" {
			helpLine(w, optionNames(o, p), p.Help)
		}
	}

	for _, name := range s.groupOrder {
		g := s.groups[name]
		if len(g.members) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", g.title)
		if g.description != "" {
			fmt.Fprintf(w, "%s\n", g.description)
		}
		for _, p := range g.members {
			if o, ok := p.Arg.(*Option); ok {
				helpLine(w, optionNames(o, p), p.Help)
			}
		}
	}

	s.printNameListing(w, "environment variables", func(p *Parameter) string {
		if p.Env == nil {
			return ""
		}
		return p.Env.EnvName(p.Name, p.Group)
	})

	s.printNameListing(w, "configuration parameters", func(p *Parameter) string {
		if !p.Config.enabled {
			return ""
		}
		return p.FullName()
	})
}

// printNameListing writes one labeled block listing every parameter for
// which the name function yields a non-empty name.
func (s *ParameterSet) printNameListing(w io.Writer, label string, name func(*Parameter) string) {
	printed := false

	for _, full := range s.order {
		p := s.params[full]
		n := name(p)
		if n == "" {
			continue
		}

		if !printed {
			fmt.Fprintf(w, "\n%s:\n", label)
			printed = true
		}
		helpLine(w, n, p.Help)
	}
}

// helpLine writes one listing line: a left-justified 21-character name
// field followed by the help text.
func helpLine(w io.Writer, name, text string) {
	fmt.Fprintf(w, "  %-21s%s\n", name, text)
}

// optionNames renders the displayed option names, short form first.
func optionNames(o *Option, p *Parameter) string {
	long := "--" + o.LongName(p.Name, p.Group)
	if short := o.ShortName(); short != "" {
		return "-" + short + ", " + long
	}
	return long
}
