package params

import "strings"

// deriveName constructs a source-specific name from a parameter's base name.
// An override replaces the base name; the group is prepended with a '_'
// separator when prefixing is enabled and a group is present; the case
// transform is applied last. Given a non-empty base name the result is
// always non-empty.
func deriveName(base, override, group string, usePrefix, uppercase bool) string {
	name := base
	if override != "" {
		name = override
	}

	if usePrefix && group != "" {
		name = group + "_" + name
	}

	if uppercase {
		name = strings.ToUpper(name)
	}

	return name
}

// fullName joins a group and base name with a '_' separator. It is the key
// for the resolved value map and the default configuration section name.
func fullName(name, group string) string {
	if group == "" {
		return name
	}
	return group + "_" + name
}
