package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	t.Run("Truthy Spellings", func(t *testing.T) {
		for _, s := range []string{"true", "t", "yes", "y", "on", "TRUE", "Yes", "ON"} {
			v, err := params.ToBool(s)
			require.NoError(t, err)
			assert.Equal(t, true, v, "input %q", s)
		}
	})

	t.Run("Numeric Strings", func(t *testing.T) {
		cases := map[string]bool{
			"1":   true,
			"100": true,
			"-3":  true,
			"0":   false,
		}
		for s, want := range cases {
			v, err := params.ToBool(s)
			require.NoError(t, err)
			assert.Equal(t, want, v, "input %q", s)
		}
	})

	t.Run("Everything Else Is False", func(t *testing.T) {
		for _, s := range []string{"", "false", "no", "off", "truthful", "yess", "maybe"} {
			v, err := params.ToBool(s)
			require.NoError(t, err)
			assert.Equal(t, false, v, "input %q", s)
		}
	})
}

func TestToInt(t *testing.T) {
	v, err := params.ToInt("1962")
	require.NoError(t, err)
	assert.Equal(t, 1962, v)

	_, err = params.ToInt("twelve")
	assert.Error(t, err)
}

func TestToFloat(t *testing.T) {
	v, err := params.ToFloat("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	_, err = params.ToFloat("pi")
	assert.Error(t, err)
}

func TestSplitter(t *testing.T) {
	t.Run("Default Comma Split", func(t *testing.T) {
		v, err := params.ToList("var, local")
		require.NoError(t, err)
		assert.Equal(t, []string{"var", "local"}, v)
	})

	t.Run("Blank Input Yields Empty List", func(t *testing.T) {
		v, err := params.ToList("")
		require.NoError(t, err)
		assert.Equal(t, []string{}, v)
	})

	t.Run("Keep Blank Tokens", func(t *testing.T) {
		s := params.Splitter{KeepBlank: true}
		v, err := s.Convert("a,,b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "", "b"}, v)

		v, err = s.Convert("")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, v)
	})

	t.Run("No Strip", func(t *testing.T) {
		s := params.Splitter{NoStrip: true}
		v, err := s.Convert("a, b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", " b"}, v)
	})

	t.Run("Custom Delimiter", func(t *testing.T) {
		s := params.Splitter{Delimiter: ":"}
		v, err := s.Convert("/usr/bin:/bin: /sbin")
		require.NoError(t, err)
		assert.Equal(t, []string{"/usr/bin", "/bin", "/sbin"}, v)
	})

	t.Run("Per Token Converter", func(t *testing.T) {
		s := params.Splitter{Each: params.ToInt}
		v, err := s.Convert("1, 2, 3")
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2, 3}, v)

		_, err = s.Convert("1, x")
		assert.Error(t, err)
	})
}

func TestExpandPath(t *testing.T) {
	t.Run("Home Expansion", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		path, err := params.ExpandPath("~/backup.ini")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "backup.ini"), path)
	})

	t.Run("Relative Becomes Absolute", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)

		path, err := params.ExpandPath("backup.ini")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "backup.ini"), path)
	})

	t.Run("Plugs In As A Converter", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		values, err := params.Collect(
			[]*params.Parameter{
				{Name: "root", Arg: &params.Option{}, Convert: params.ExpandPath},
			},
			[]string{"--root", "~/data"},
			nil,
		)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "data"), values["root"])
	})

	t.Run("Empty Is Working Directory", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)

		path, err := params.ExpandPath("")
		require.NoError(t, err)
		assert.Equal(t, cwd, path)
	})
}
