package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomicThenRead(t *testing.T) {
	f := New(afero.NewMemMapFs())
	require.NoError(t, f.WriteAtomic("launcher_config.json", []byte(`{"a":"b"}`)))
	require.NoError(t, f.WriteAtomic("launcher_config.json", []byte(`{}`)))

	b, err := f.Read("launcher_config.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	entries, err := afero.ReadDir(f.Fs(), ".")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadMissingIsNotExist(t *testing.T) {
	f := New(afero.NewMemMapFs())
	_, err := f.Read("nope.json")
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestWriteAtomicReadOnlyFails(t *testing.T) {
	f := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	err := f.WriteAtomic("launcher_config.json", []byte(`{}`))
	require.Error(t, err)
	assert.False(t, IsNotExist(err))
}

func TestDirWritesIntoDirectory(t *testing.T) {
	tdir := t.TempDir()
	f := Dir(tdir)
	require.NoError(t, f.WriteAtomic("launcher_config.json", []byte(`{}`)))

	st, err := os.Stat(filepath.Join(tdir, "launcher_config.json"))
	require.NoError(t, err)
	assert.Equal(t, PrivateMode, st.Mode().Perm())
}
