package params_test

import (
	"testing"

	"params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesAccessors(t *testing.T) {
	values := params.Values{
		"name":     "archive",
		"count":    42,
		"ratio":    0.5,
		"enabled":  true,
		"padding":  "128",
		"targets":  []string{"home", "etc"},
		"mixed":    []any{"usr", "var"},
		"csv":      "opt, srv",
		"missing":  nil,
		"blocking": int64(20),
	}

	t.Run("Get", func(t *testing.T) {
		v, collected := values.Get("count")
		assert.True(t, collected)
		assert.Equal(t, 42, v)

		_, collected = values.Get("absent")
		assert.False(t, collected)
	})

	t.Run("String", func(t *testing.T) {
		s, err := values.String("name")
		require.NoError(t, err)
		assert.Equal(t, "archive", s)

		s, err = values.String("count")
		require.NoError(t, err)
		assert.Equal(t, "42", s)

		s, err = values.String("enabled")
		require.NoError(t, err)
		assert.Equal(t, "true", s)

		s, err = values.String("missing")
		require.NoError(t, err)
		assert.Equal(t, "", s)

		_, err = values.String("absent")
		assert.Error(t, err)
	})

	t.Run("Int64", func(t *testing.T) {
		i, err := values.Int64("count")
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)

		i, err = values.Int64("blocking")
		require.NoError(t, err)
		assert.Equal(t, int64(20), i)

		i, err = values.Int64("padding")
		require.NoError(t, err)
		assert.Equal(t, int64(128), i)

		i, err = values.Int64("enabled")
		require.NoError(t, err)
		assert.Equal(t, int64(1), i)

		_, err = values.Int64("name")
		assert.Error(t, err)

		_, err = values.Int64("missing")
		assert.Error(t, err)
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := values.Bool("enabled")
		require.NoError(t, err)
		assert.True(t, b)

		b, err = values.Bool("count")
		require.NoError(t, err)
		assert.True(t, b)

		_, err = values.Bool("name")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		f, err := values.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)

		f, err = values.Float64("count")
		require.NoError(t, err)
		assert.Equal(t, 42.0, f)

		f, err = values.Float64("padding")
		require.NoError(t, err)
		assert.Equal(t, 128.0, f)
	})

	t.Run("Strings", func(t *testing.T) {
		s, err := values.Strings("targets")
		require.NoError(t, err)
		assert.Equal(t, []string{"home", "etc"}, s)

		s, err = values.Strings("mixed")
		require.NoError(t, err)
		assert.Equal(t, []string{"usr", "var"}, s)

		s, err = values.Strings("csv")
		require.NoError(t, err)
		assert.Equal(t, []string{"opt", "srv"}, s)

		s, err = values.Strings("missing")
		require.NoError(t, err)
		assert.Nil(t, s)

		_, err = values.Strings("count")
		assert.Error(t, err)
	})
}
