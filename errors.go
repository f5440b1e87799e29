package params

import "errors"

var (
	// ErrConfigNotFound indicates a named configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrUnknownGroup indicates an option binding references a help or
	// mutex group that was never added to the set.
	ErrUnknownGroup = errors.New("unknown help or mutex group")

	// ErrDuplicateOption indicates a long option name is already registered
	// with the command-line parser.
	ErrDuplicateOption = errors.New("duplicate option name")

	// ErrExclusiveOptions indicates more than one member of a mutually
	// exclusive group was supplied on the command line.
	ErrExclusiveOptions = errors.New("mutually exclusive options")

	// ErrMissingOption indicates no member of a required mutex group was
	// supplied on the command line.
	ErrMissingOption = errors.New("required option missing")

	// ErrUnknownArguments indicates the command line carried positional
	// tokens beyond the declared positional bindings.
	ErrUnknownArguments = errors.New("unrecognized arguments")

	// ErrDelegation indicates a parameter delegates its configuration
	// section to another parameter that itself delegates.
	ErrDelegation = errors.New("chained configuration section delegation")
)
