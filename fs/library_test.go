package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ryderstorm/askdocs"
	"github.com/ryderstorm/askdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewLibrary_CreatesMissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "knowledge")

	lib, err := fs.NewLibrary(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, lib.Dir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLibrary_IsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := fs.NewLibrary(dir)
	require.NoError(t, err)
	_, err = fs.NewLibrary(dir)
	require.NoError(t, err)
}

func TestNewLibrary_RequiresDirectory(t *testing.T) {
	t.Parallel()

	_, err := fs.NewLibrary("")

	require.Error(t, err)
	assert.Equal(t, askdocs.EINVALID, askdocs.ErrorCode(err))
}

func TestLibrary_Files(t *testing.T) {
	t.Parallel()

	t.Run("returns markdown base names sorted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "fastapi.md", "# FastAPI")
		writeFile(t, dir, "docker.md", "# Docker")
		writeFile(t, dir, "notes.txt", "not a knowledge file")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.md"), 0755))

		lib, err := fs.NewLibrary(dir)
		require.NoError(t, err)

		files, err := lib.Files(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"docker.md", "fastapi.md"}, files)
	})

	t.Run("empty directory yields empty listing", func(t *testing.T) {
		t.Parallel()

		lib, err := fs.NewLibrary(t.TempDir())
		require.NoError(t, err)

		files, err := lib.Files(context.Background())

		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("listing is stable across calls", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "b.md", "b")
		writeFile(t, dir, "a.md", "a")
		writeFile(t, dir, "c.md", "c")

		lib, err := fs.NewLibrary(dir)
		require.NoError(t, err)

		first, err := lib.Files(context.Background())
		require.NoError(t, err)
		second, err := lib.Files(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns error when directory was removed", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "knowledge")
		lib, err := fs.NewLibrary(dir)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		_, err = lib.Files(context.Background())

		require.Error(t, err)
		assert.Equal(t, askdocs.EINTERNAL, askdocs.ErrorCode(err))
	})
}

func TestLibrary_Documents(t *testing.T) {
	t.Parallel()

	t.Run("reads contents in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "fastapi.md", "# FastAPI\nasync handlers")
		writeFile(t, dir, "docker.md", "# Docker\nmulti-stage builds")

		lib, err := fs.NewLibrary(dir)
		require.NoError(t, err)

		docs, err := lib.Documents(context.Background())

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "docker.md", docs[0].Name)
		assert.Contains(t, docs[0].Content, "multi-stage builds")
		assert.Equal(t, "fastapi.md", docs[1].Name)
		assert.Contains(t, docs[1].Content, "async handlers")
	})

	t.Run("empty directory yields no documents", func(t *testing.T) {
		t.Parallel()

		lib, err := fs.NewLibrary(t.TempDir())
		require.NoError(t, err)

		docs, err := lib.Documents(context.Background())

		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.md", "a")

		lib, err := fs.NewLibrary(dir)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = lib.Documents(ctx)

		require.Error(t, err)
	})
}
