package utils

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.bin")

	require.NoError(t, AtomicWrite(name, 0644, func(w io.Writer) error {
		_, err := w.Write([]byte("content"))
		return err
	}))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
	st, err := os.Stat(name)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), st.Mode().Perm())

	failure := errors.New("failure")
	err = AtomicWrite(name, 0644, func(w io.Writer) error {
		w.Write([]byte("partial"))
		return failure
	})
	require.ErrorIs(t, err, failure)

	// the old content survives and no temporary file is left behind
	data, err = os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "content", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

type basePath string

func (b basePath) GetBasePath() string { return string(b) }

func TestGetPath(t *testing.T) {
	require.Equal(t, "/etc/x", GetPath("/etc/x", basePath("/base")))
	require.Equal(t, filepath.Join("/base", "x"), GetPath("x", basePath("/base")))
	require.Equal(t, "", GetPath("", basePath("/base")))
}
