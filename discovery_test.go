package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDiscovery(t *testing.T) {
	writeFile := func(t *testing.T, dir, name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("answer = 42\n"), 0644))
		return path
	}

	t.Run("Environment Variable Wins", func(t *testing.T) {
		dir := t.TempDir()
		onDisk := writeFile(t, dir, "backup.ini")

		d := params.FileDiscovery{
			Name:       "backup",
			Extensions: []string{".ini"},
			Paths:      []string{dir},
			EnvVar:     "BACKUP_CONFIG",
		}

		path, found := d.Find(envMap(map[string]string{"BACKUP_CONFIG": "/explicit/backup.ini"}))
		assert.True(t, found)
		assert.Equal(t, "/explicit/backup.ini", path)

		path, found = d.Find(envMap(nil))
		assert.True(t, found)
		assert.Equal(t, onDisk, path)
	})

	t.Run("Extensions Tried In Order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "backup.conf")

		d := params.FileDiscovery{
			Name:       "backup",
			Extensions: []string{".ini", ".conf"},
			Paths:      []string{dir},
		}

		path, found := d.Find(envMap(nil))
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, "backup.conf"), path)
	})

	t.Run("XDG Config Home", func(t *testing.T) {
		dir := t.TempDir()
		appDir := filepath.Join(dir, "backup")
		require.NoError(t, os.MkdirAll(appDir, 0755))
		writeFile(t, appDir, "backup.ini")

		d := params.FileDiscovery{
			Name:       "backup",
			Extensions: []string{".ini"},
			UseXDG:     true,
		}

		path, found := d.Find(envMap(map[string]string{"XDG_CONFIG_HOME": dir}))
		assert.True(t, found)
		assert.Equal(t, filepath.Join(appDir, "backup.ini"), path)
	})

	t.Run("Not Found Is Not An Error", func(t *testing.T) {
		d := params.FileDiscovery{
			Name:       "backup",
			Extensions: []string{".ini"},
			Paths:      []string{t.TempDir()},
		}

		path, found := d.Find(envMap(nil))
		assert.False(t, found)
		assert.Equal(t, "", path)
	})

	t.Run("Defaults", func(t *testing.T) {
		d := params.DefaultFileDiscovery("backup")
		assert.Equal(t, "backup", d.Name)
		assert.Equal(t, "BACKUP_CONFIG", d.EnvVar)
		assert.Contains(t, d.Extensions, ".ini")
		assert.True(t, d.UseXDG)
		assert.True(t, d.UseCurrentDir)
	})
}
