package utils

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// AtomicWrite creates name with the content produced by write. The data is
// written to a temporary file in the same directory which replaces name only
// after it has been synced successfully.
func AtomicWrite(name string, perm fs.FileMode, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(name)
	fd, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(fd.Name())
		}
	}()

	if err = write(fd); err != nil {
		return err
	}
	// os.CreateTemp always creates file with 0600
	if perm != 0600 {
		if err = fd.Chmod(perm); err != nil {
			return err
		}
	}
	if err = fd.Sync(); err != nil {
		return err
	}
	if err = fd.Close(); err != nil {
		return err
	}
	return os.Rename(fd.Name(), name)
}
