package params

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscovery configures automatic configuration file discovery.
type FileDiscovery struct {
	// Name is the base name of the configuration file, without extension.
	Name string

	// Extensions to try, in order.
	Extensions []string

	// Paths are custom search directories, tried before the defaults.
	Paths []string

	// EnvVar names an environment variable holding an explicit path.
	EnvVar string

	// UseXDG searches the XDG configuration directories.
	UseXDG bool

	// UseCurrentDir searches the current working directory.
	UseCurrentDir bool
}

// DefaultFileDiscovery returns the standard discovery settings for an
// application name.
func DefaultFileDiscovery(appName string) FileDiscovery {
	return FileDiscovery{
		Name:          appName,
		Extensions:    []string{".ini", ".conf", ".config"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// Find locates a configuration file. The environment variable (read via
// the given lookup) wins, then the custom paths, the current directory,
// and the XDG directories, each tried with every extension in order.
// Not finding a file is not an error: applications can run on environment
// variables and defaults alone.
func (d FileDiscovery) Find(env EnvLookup) (string, bool) {
	if env == nil {
		env = os.LookupEnv
	}

	if d.EnvVar != "" {
		if path, ok := env(d.EnvVar); ok && path != "" {
			return path, true
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, d.Paths...)

	if d.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if d.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(d.Name, env)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range d.Extensions {
			path := filepath.Join(dir, d.Name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}

	return "", false
}

// xdgConfigPaths returns XDG-compliant configuration search directories.
func xdgConfigPaths(appName string, env EnvLookup) []string {
	var paths []string

	if xdgHome, ok := env("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home, ok := env("HOME"); ok && home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs, ok := env("XDG_CONFIG_DIRS"); ok && xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
