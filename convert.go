package params

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Converter transforms a raw string value from any source into its typed
// form. A converter is applied exactly once, to the winning source's raw
// value. Conversion failures abort collection.
type Converter func(value string) (any, error)

// truthy lists the recognized case-insensitive true spellings for ToBool.
// Abbreviations beyond the listed forms are not supported.
var truthy = []string{"true", "t", "yes", "y", "on"}

// ToBool converts a string to a boolean. Any decimal string converts to
// true when non-zero; otherwise the truthy spellings above convert to true
// and everything else converts to false. ToBool never fails.
func ToBool(value string) (any, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return n != 0, nil
	}

	value = strings.ToLower(value)
	for _, t := range truthy {
		if value == t {
			return true, nil
		}
	}

	return false, nil
}

// ToInt converts a decimal string to an int.
func ToInt(value string) (any, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to int: %w", value, err)
	}
	return n, nil
}

// ToFloat converts a string to a float64.
func ToFloat(value string) (any, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to float: %w", value, err)
	}
	return f, nil
}

// Splitter converts a delimited string to a list of tokens.
type Splitter struct {
	// Delimiter separates tokens. Empty selects a comma.
	Delimiter string

	// NoStrip keeps leading and trailing whitespace on each token.
	NoStrip bool

	// KeepBlank preserves blank tokens between delimiters. This also makes
	// a blank input produce one blank token instead of an empty list.
	KeepBlank bool

	// Each is applied to every token. Nil keeps the original strings.
	Each Converter
}

// Convert parses the delimited string. Without an Each converter the result
// is a []string; with one it is a []any of the converted tokens. A blank
// input yields an empty list unless KeepBlank is set.
func (s Splitter) Convert(value string) (any, error) {
	delimiter := s.Delimiter
	if delimiter == "" {
		delimiter = ","
	}

	parts := strings.Split(value, delimiter)

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if !s.NoStrip {
			part = strings.TrimSpace(part)
		}
		if part == "" && !s.KeepBlank {
			continue
		}
		tokens = append(tokens, part)
	}

	if s.Each == nil {
		return tokens, nil
	}

	converted := make([]any, 0, len(tokens))
	for _, token := range tokens {
		v, err := s.Each(token)
		if err != nil {
			return nil, fmt.Errorf("cannot convert token %q: %w", token, err)
		}
		converted = append(converted, v)
	}

	return converted, nil
}

// ToList converts a comma-delimited string to a []string with whitespace
// stripped and blank tokens dropped.
func ToList(value string) (any, error) {
	return Splitter{}.Convert(value)
}

// ExpandPath is a Converter that expands a file path to an absolute path
// string. A leading '~' is replaced with the user's home directory and an
// empty path resolves to the current working directory.
func ExpandPath(path string) (any, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return cwd, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot expand %q: %w", path, err)
	}

	return abs, nil
}
