// Package params resolves one final value per named application parameter
// by merging command-line arguments and options, environment variables,
// INI-style configuration files, and compiled defaults, in that order of
// precedence.
//
// Each parameter has a base name and an optional group name. These parts
// identify the parameter value in the various sources as follows:
//
//	[group_]name        The key for the resolved value in the final
//	                    value map.
//
//	--[group_]name      The long option name when the parameter has a
//	                    command line option, or the positional argument
//	                    name when it has a positional argument.
//
//	[GROUP_]NAME        The environment variable name when the parameter
//	                    has an environment binding.
//
//	[group]             The group name is the configuration file section
//	name = value        name and the base name is the option name. A
//	                    parameter without a group reads from the default
//	                    section.
//
// Quick start:
//
//	set := params.NewSet("backup", "tape backup utility")
//	err := set.AddParameters(
//	    &params.Parameter{
//	        Name:    "tape",
//	        Group:   "backup",
//	        Arg:     &params.Option{Short: "t"},
//	        Env:     &params.EnvVar{},
//	        Config:  params.UseConfig(),
//	        Default: "/dev/nst0",
//	        Help:    "target tape device",
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	values, err := set.CollectValues(os.Args[1:], params.File("backup.ini"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tape, _ := values.String("backup_tape")
//
// Command-line parsing is delegated to github.com/spf13/pflag and
// configuration files are parsed with gopkg.in/ini.v1 (sections, a DEFAULT
// section, '=' delimiters, '#' comments, and recursive %(key)s value
// interpolation).
package params
