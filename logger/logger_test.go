package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelText(t *testing.T) {
	for l := LevelError; l <= LevelTrace; l++ {
		text, err := l.MarshalText()
		require.NoError(t, err)
		var decoded Level
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, l, decoded)
	}

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("DEBUG")))
	require.Equal(t, LevelDebug, l)
	require.Error(t, l.UnmarshalText([]byte("verbose")))

	require.Equal(t, "42", Level(42).String())
}
