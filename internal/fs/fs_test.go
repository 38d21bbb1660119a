// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/parsec.go/internal/exc"
)

func newMapFS(t *testing.T, files fstest.MapFS) FileSystem {
	t.Helper()
	f, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS {
		return files
	}))
	require.NoError(t, err)
	return f
}

func TestFileSystemLocalOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newMapFS(t, fstest.MapFS{
		"app.conf":         {Data: []byte("a = 1")},
		"dir/one.conf":     {Data: []byte("b = 2")},
		"dir/two.kv":       {Data: []byte("c = 3")},
		"dir/ignored.txt":  {Data: []byte("nope")},
		"dir/nested/x.cfg": {Data: []byte("d = 4")},
		"empty/readme.md":  {Data: []byte("none")},
	})

	files, err := f.Open(ctx, "app.conf")
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "/app.conf", files[0].Path(ctx))
	body, err := files[0].Body(ctx)
	require.NoError(t, err)
	require.Equal(t, "a = 1", body)

	files, err = f.Open(ctx, "file:///dir")
	require.NoError(t, err)
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, file.Path(ctx))
	}
	sort.Strings(paths)
	require.Equal(t, []string{"/dir/one.conf", "/dir/two.kv"}, paths)

	_, err = f.Open(ctx, "missing.conf")
	require.Error(t, err)
	var e exc.Exception
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeFileNotFound, e.Code())

	_, err = f.Open(ctx, "empty")
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeFileNotFound, e.Code())
}

func TestFileSystemLocalFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	files := fstest.MapFS{
		"dir/notes.txt": {Data: []byte("x = y")},
	}
	f, err := NewFileSystemLocal("/",
		WithOptionFSFactory(func(string) iofs.FS { return files }),
		WithOptionFileFilter(func(ctx context.Context, fname string) bool {
			return filepath.Ext(fname) == ".txt"
		}),
	)
	require.NoError(t, err)
	opened, err := f.Open(ctx, "dir")
	require.NoError(t, err)
	require.Len(t, opened, 1)
}

func TestFileSystemLocalDisk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "disk.conf"), []byte("k = v\n"), 0o644))

	f, err := NewFileSystemLocal(root)
	require.NoError(t, err)
	files, err := f.Open(ctx, "/")
	require.NoError(t, err)
	require.Len(t, files, 1)
	body, err := files[0].Body(ctx)
	require.NoError(t, err)
	require.Equal(t, "k = v\n", body)
}

func TestFileSystemMulti(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first := newMapFS(t, fstest.MapFS{"a.conf": {Data: []byte("first")}})
	second := newMapFS(t, fstest.MapFS{
		"a.conf": {Data: []byte("second")},
		"b.conf": {Data: []byte("only second")},
	})
	multi := FileSystemMulti{first, second}

	files, err := multi.Open(ctx, "a.conf")
	require.NoError(t, err)
	body, err := files[0].Body(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", body)

	files, err = multi.Open(ctx, "b.conf")
	require.NoError(t, err)
	body, err = files[0].Body(ctx)
	require.NoError(t, err)
	require.Equal(t, "only second", body)

	_, err = multi.Open(ctx, "c.conf")
	require.Error(t, err)
}

func TestFileString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := NewFileString("/inline.conf", "x = 1")
	require.Equal(t, "/inline.conf", f.Path(ctx))
	for x := 0; x < 2; x = x + 1 {
		body, err := f.Body(ctx)
		require.NoError(t, err)
		require.Equal(t, "x = 1", body)
	}
}
