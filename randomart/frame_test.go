package randomart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	art := "ab\ncd"
	require.Equal(t, "+--+\n|ab|\n|cd|\n+--+", Frame(art, "", ""))
}

func TestFrameLabels(t *testing.T) {
	g, err := Generate([]byte("frame"), WithSize(17, 9))
	require.NoError(t, err)
	art, err := RenderText(g, "")
	require.NoError(t, err)

	out := Frame(art, "ED25519 256", "SHA256")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "+--[ED25519 256]--+", lines[0])
	require.Equal(t, "+----[SHA256]-----+", lines[10])
	for _, l := range lines {
		require.Len(t, l, 19)
	}
	for _, l := range lines[1:10] {
		require.True(t, strings.HasPrefix(l, "|"))
		require.True(t, strings.HasSuffix(l, "|"))
	}
}

func TestFrameLongHeader(t *testing.T) {
	out := Frame("abcd", "0123456789", "")
	lines := strings.Split(out, "\n")
	require.Equal(t, "[0123]", lines[0])
	require.Equal(t, "+----+", lines[2])
}
