// Package storage is the file collaborator behind the settings store: reads
// and whole-file writes inside the app's private data directory.
package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// PrivateMode is the permission used for files only the app may read.
const PrivateMode os.FileMode = 0o600

type Files struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Files {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return &Files{fs: fs}
}

// Dir returns a Files rooted at dir on the real filesystem.
func Dir(dir string) *Files {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func (f *Files) Fs() afero.Fs { return f.fs }

func (f *Files) Read(name string) ([]byte, error) {
	b, err := afero.ReadFile(f.fs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return b, nil
}

// WriteAtomic replaces name with data by writing a sibling temp file and
// renaming it over the target, so readers see either the old or the new
// content.
func (f *Files) WriteAtomic(name string, data []byte) error {
	tmp, err := afero.TempFile(f.fs, filepath.Dir(name), filepath.Base(name)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", name)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = f.fs.Remove(tmpName)
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = f.fs.Remove(tmpName)
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := f.fs.Chmod(tmpName, PrivateMode); err != nil {
		_ = f.fs.Remove(tmpName)
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := f.fs.Rename(tmpName, name); err != nil {
		_ = f.fs.Remove(tmpName)
		return errors.Wrapf(err, "rename %s", tmpName)
	}
	return nil
}

func IsNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }
