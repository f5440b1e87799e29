package params

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// ConfigSource designates where configuration file data comes from: a
// filesystem path (File), raw text (Text), or another parameter whose
// resolved value names the file (FromParameter). It is a closed set.
type ConfigSource interface {
	load(s *ParameterSet, ns *namespace) (*ini.File, error)
}

// iniOptions selects the configuration dialect: '=' as the key/value
// delimiter, '#' comments, sections with a default section, and recursive
// %(key)s value interpolation (handled by the parser on key access).
func iniOptions() ini.LoadOptions {
	return ini.LoadOptions{
		KeyValueDelimiters: "=",
	}
}

// emptyConfig returns a configuration parser with no data loaded.
func emptyConfig() *ini.File {
	return ini.Empty(iniOptions())
}

// File reads configuration data from the named file. The path is expanded
// (leading '~', relative segments) before reading; a missing or unreadable
// file is a fatal error.
func File(path string) ConfigSource {
	return fileSource{path: path}
}

type fileSource struct {
	path string
}

func (f fileSource) load(s *ParameterSet, ns *namespace) (*ini.File, error) {
	expanded, err := ExpandPath(f.path)
	if err != nil {
		return nil, err
	}
	path := expanded.(string)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("cannot stat configuration file '%s': %w", path, err)
	}

	cfg, err := ini.LoadSources(iniOptions(), path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration file '%s': %w", path, err)
	}

	return cfg, nil
}

// Text parses the given string directly as configuration data.
func Text(text string) ConfigSource {
	return textSource{text: text}
}

type textSource struct {
	text string
}

func (t textSource) load(s *ParameterSet, ns *namespace) (*ini.File, error) {
	cfg, err := ini.LoadSources(iniOptions(), []byte(t.text))
	if err != nil {
		return nil, fmt.Errorf("cannot parse configuration text: %w", err)
	}
	return cfg, nil
}

// FromParameter takes the configuration file name from another parameter's
// resolved value. The parameter is resolved against the parsed command
// line and environment only; if it yields no value, no file is read and
// the configuration source stays empty.
func FromParameter(p *Parameter) ConfigSource {
	return paramSource{p: p}
}

type paramSource struct {
	p *Parameter
}

func (ps paramSource) load(s *ParameterSet, ns *namespace) (*ini.File, error) {
	resolved, err := ps.p.value(ns, emptyConfig(), s.env)
	if err != nil {
		return nil, err
	}

	path, _ := resolved.(string)
	if path == "" {
		return emptyConfig(), nil
	}

	return fileSource{path: path}.load(s, ns)
}

// loadSource resolves the configuration source for a collection pass. A
// nil source leaves the configuration parser empty.
func (s *ParameterSet) loadSource(source ConfigSource, ns *namespace) (*ini.File, error) {
	if source == nil {
		return emptyConfig(), nil
	}
	return source.load(s, ns)
}
