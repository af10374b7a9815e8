package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheet(t *testing.T) {
	t.Run("default style", func(t *testing.T) {
		css, err := Stylesheet("")
		require.NoError(t, err)
		assert.Contains(t, css, ".chroma")
	})

	t.Run("named style", func(t *testing.T) {
		css, err := Stylesheet("monokai")
		require.NoError(t, err)
		assert.Contains(t, css, ".chroma")
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := Stylesheet("no-such-style")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownStyle)
	})
}

func TestStyles(t *testing.T) {
	names := Styles()
	assert.Contains(t, names, DefaultStyle)
	assert.IsNonDecreasing(t, names)
}
