package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, content, 0o600)
	require.NoError(t, err)

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte("[parent]\nvec = {10, 20}\n")
	path := writeFile(t, "test.cfg", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, path, fetcher.Path())
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "test.cfg", []byte("k = v\n"))
	messy := filepath.Dir(path) + "/./sub/../test.cfg"

	fetcher, err := NewFetcher(messy)()
	require.NoError(t, err)
	assert.Equal(t, path, fetcher.Path())
}

func TestNewFetcher_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    filepath.Join(dir, "missing.cfg"),
			wantErr: fs.ErrNotExist,
			wantMsg: "stat file",
		},
		{
			name:    "directory",
			path:    dir,
			wantErr: ErrPathIsDirectory,
			wantMsg: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := NewFetcher(tt.path)()

			require.Error(t, err)
			assert.Nil(t, fetcher)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNewFetcher_FileTooLarge(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "huge.cfg")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	fetcher, err := NewFetcher(path)()

	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Nil(t, fetcher)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeFile(t, "empty.cfg", nil))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_Fetch_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	original := []byte("version = 1\n")
	path := writeFile(t, "test.cfg", original)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	err = os.WriteFile(path, []byte("version = 2\n"), 0o600)
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, first, "Fetch should return the data read at construction")

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, second, "mutating a fetched slice must not affect the cache")
}
