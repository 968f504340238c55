package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalFs(t *testing.T) {
	_, err := NewLocalFs(filepath.Join(t.TempDir(), "nothing"), nil)
	assert.Error(t, err)

	fs, err := NewLocalFs(t.TempDir(), logging.MustGetLogger("test"))
	require.NoError(t, err)
	assert.Equal(t, "file://", fs.Protocol())
}

func TestLocalFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "locales", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "b.toml"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "a.yaml"), []byte("a"), 0o644))

	var fs FileSystem
	fs, err := NewLocalFs(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, fs.String())

	ok, err := fs.FolderExists("locales")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fs.FolderExists("nothing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fs.FileExists("locales", "a.yaml")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fs.FileExists("locales", "sub")
	require.NoError(t, err)
	assert.False(t, ok)

	names, err := fs.FileList("locales")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.yaml", "b.toml"}, names)

	data, err := fs.FileGet("locales", "b.toml", FileGetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	_, err = fs.FileGet("locales", "c.toml", FileGetOptions{})
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))

	_, err = fs.FileList("nothing")
	assert.True(t, IsNotFoundError(err))
}
