package io

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/kasuboski/mediagroup/pkg/io/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMediaFileSystem_ReadFile(t *testing.T) {
	mfs := &MediaFileSystem{}

	t.Run("existing file", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "records-*.json")
		require.NoError(t, err)
		defer os.Remove(tempFile.Name())

		_, err = tempFile.WriteString(`[]`)
		require.NoError(t, err)
		require.NoError(t, tempFile.Close())

		b, err := mfs.ReadFile(tempFile.Name())
		assert.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := mfs.ReadFile("/non/existent/records.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestMediaFileSystem_WalkDir(t *testing.T) {
	mfs := &MediaFileSystem{}
	fsys := fstest.MapFS{
		"Lost/Season 01/Lost - S01E01.mkv": {},
		"Dune (2021)/Dune (2021).mkv":      {},
	}

	var files []string
	err := mfs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})

	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Lost/Season 01/Lost - S01E01.mkv", "Dune (2021)/Dune (2021).mkv"}, files)
}

func TestEnsureDir(t *testing.T) {
	mfs := &MediaFileSystem{}

	t.Run("directory", func(t *testing.T) {
		assert.NoError(t, EnsureDir(mfs, t.TempDir()))
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movie.mkv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		assert.ErrorIs(t, EnsureDir(mfs, path), ErrNotDirectory)
	})

	t.Run("stat error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockfs := mocks.NewMockFileIO(ctrl)

		wantErr := errors.New("expected testing error")
		mockfs.EXPECT().Stat("/library").Times(1).Return(nil, wantErr)

		assert.ErrorIs(t, EnsureDir(mockfs, "/library"), wantErr)
	})
}
