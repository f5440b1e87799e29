package params_test

import (
	"bytes"
	"testing"

	"params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectHelp runs a collection with --help against a captured writer and
// a stubbed exit hook, returning the rendered text and the exit code.
func collectHelp(t *testing.T, parameters ...*params.Parameter) (string, int) {
	t.Helper()

	var out bytes.Buffer
	exitCode := -1

	values, err := params.NewBuilder("backup", "tape backup utility").
		WithParameters(parameters...).
		WithArgs([]string{"--help"}).
		WithEnvLookup(envMap(nil)).
		WithOutput(&out).
		WithExitFunc(func(code int) { exitCode = code }).
		Collect()
	require.NoError(t, err)
	assert.Nil(t, values)

	return out.String(), exitCode
}

func TestHelp(t *testing.T) {
	t.Run("Usage And Option Listing", func(t *testing.T) {
		text, code := collectHelp(t, tapeParameter())

		assert.Equal(t, 0, code)
		assert.Contains(t, text, "usage: backup [options]")
		assert.Contains(t, text, "tape backup utility")
		assert.Contains(t, text, "options:")
		assert.Contains(t, text, "-h, --help")
		assert.Contains(t, text, "-t, --backup_tape")
	})

	t.Run("Environment And Config Listings", func(t *testing.T) {
		text, _ := collectHelp(t, tapeParameter())

		assert.Contains(t, text, "environment variables:")
		assert.Contains(t, text, "BACKUP_TAPE")
		assert.Contains(t, text, "configuration parameters:")
		assert.Contains(t, text, "backup_tape")
	})

	t.Run("Default Appended To Help Text", func(t *testing.T) {
		text, _ := collectHelp(t, tapeParameter())
		assert.Contains(t, text, "target tape device (def: /dev/nst0)")
	})

	t.Run("Aligned Name Field", func(t *testing.T) {
		text, _ := collectHelp(t, tapeParameter())
		assert.Contains(t, text, "  BACKUP_TAPE          target tape device")
	})

	t.Run("Positional Arguments Listed", func(t *testing.T) {
		text, _ := collectHelp(t,
			&params.Parameter{Name: "source", Arg: &params.Argument{}, Help: "file to read"},
		)

		assert.Contains(t, text, "usage: backup [options] source")
		assert.Contains(t, text, "arguments:")
		assert.Contains(t, text, "  source               file to read")
	})

	t.Run("Grouped Options Under Their Title", func(t *testing.T) {
		var out bytes.Buffer

		values, err := params.NewBuilder("backup", "").
			WithHelpGroup("tuning", "tuning options", "performance related knobs").
			WithParameters(&params.Parameter{
				Name: "blocking",
				Arg:  &params.Option{Group: "tuning"},
				Help: "tape blocking factor",
			}).
			WithArgs([]string{"-h"}).
			WithEnvLookup(envMap(nil)).
			WithOutput(&out).
			WithExitFunc(func(int) {}).
			Collect()
		require.NoError(t, err)
		assert.Nil(t, values)

		text := out.String()
		assert.Contains(t, text, "tuning options:")
		assert.Contains(t, text, "performance related knobs")
		assert.Contains(t, text, "--blocking")
	})

	t.Run("No Listings Without Bindings", func(t *testing.T) {
		text, _ := collectHelp(t,
			&params.Parameter{Name: "mode", Arg: &params.Option{}},
		)

		assert.NotContains(t, text, "environment variables:")
		assert.NotContains(t, text, "configuration parameters:")
	})
}
