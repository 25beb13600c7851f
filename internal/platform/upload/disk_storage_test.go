package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid magic bytes for content sniffing.
var (
	jpegContent = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0xFF, 0xD9}
	pngContent  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R'}
)

// fileHeader builds a *multipart.FileHeader the way gin hands it to handlers:
// by writing a multipart body and parsing it back.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestNewDiskStorage(t *testing.T) {
	t.Run("creates the directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "uploads")

		storage, err := NewDiskStorage(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, storage.Dir())
		assert.DirExists(t, dir)
	})
}

func TestDiskStorage_Save(t *testing.T) {
	t.Run("saves a JPEG with a timestamp-prefixed name", func(t *testing.T) {
		storage, err := NewDiskStorage(t.TempDir())
		require.NoError(t, err)

		filename, err := storage.Save(fileHeader(t, "cat.jpg", jpegContent))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, "-cat.jpg"), "filename %q lacks the original-name suffix", filename)

		saved, err := os.ReadFile(filepath.Join(storage.Dir(), filename))
		require.NoError(t, err)
		assert.Equal(t, jpegContent, saved, "file content must survive the sniffing rewind")
	})

	t.Run("saves a PNG", func(t *testing.T) {
		storage, err := NewDiskStorage(t.TempDir())
		require.NoError(t, err)

		filename, err := storage.Save(fileHeader(t, "dog.png", pngContent))

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(storage.Dir(), filename))
	})

	t.Run("rejects non-image content regardless of extension", func(t *testing.T) {
		storage, err := NewDiskStorage(t.TempDir())
		require.NoError(t, err)

		filename, err := storage.Save(fileHeader(t, "sneaky.jpg", []byte("#!/bin/sh\necho hi\n")))

		assert.ErrorIs(t, err, ErrUnsupportedImageType)
		assert.Empty(t, filename)

		// Nothing may be written for a rejected upload
		entries, readErr := os.ReadDir(storage.Dir())
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("strips any path component from the original name", func(t *testing.T) {
		storage, err := NewDiskStorage(t.TempDir())
		require.NoError(t, err)

		filename, err := storage.Save(fileHeader(t, "../../etc/cat.jpg", jpegContent))

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, "-cat.jpg"))
		assert.NotContains(t, filename, "/")
	})
}

func TestDiskStorage_Remove(t *testing.T) {
	t.Run("removes a staged file", func(t *testing.T) {
		storage, err := NewDiskStorage(t.TempDir())
		require.NoError(t, err)

		filename, err := storage.Save(fileHeader(t, "cat.jpg", jpegContent))
		require.NoError(t, err)

		require.NoError(t, storage.Remove(filename))
		assert.NoFileExists(t, filepath.Join(storage.Dir(), filename))
	})
}
