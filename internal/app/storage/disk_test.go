package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *DiskStorage {
	t.Helper()

	s, err := NewDiskStorage(t.TempDir(), 5<<20)
	require.NoError(t, err)
	return s
}

func TestSaveFileAndDelete(t *testing.T) {
	s := newTestStorage(t)

	data := []byte("fake png bytes")
	filename, err := s.SaveFile(data, "bus.png", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "img-"))
	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.True(t, s.FileExists(filename))

	stored, err := os.ReadFile(filepath.Join(s.dir, filename))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, stored))

	require.NoError(t, s.DeleteFile(filename))
	assert.False(t, s.FileExists(filename))
}

func TestSaveFileGeneratesUniqueNames(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.SaveFile([]byte("a"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)
	second, err := s.SaveFile([]byte("b"), "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveFileAcceptsContentTypeAliases(t *testing.T) {
	s := newTestStorage(t)

	// Browsers and older clients declare image/jpg for JPEG files.
	filename, err := s.SaveFile([]byte("a"), "photo.jpg", "image/jpg")
	require.NoError(t, err)
	assert.True(t, s.FileExists(filename))
}

func TestSaveFileRejectsNonImages(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.SaveFile([]byte("hello"), "notes.txt", "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	// Image extension with a mismatching declared content type.
	_, err = s.SaveFile([]byte("hello"), "notes.png", "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	// Executable disguised with an image content type.
	_, err = s.SaveFile([]byte("hello"), "payload.exe", "image/png")
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestSaveFileRejectsOversize(t *testing.T) {
	s, err := NewDiskStorage(t.TempDir(), 16)
	require.NoError(t, err)

	_, err = s.SaveFile(make([]byte, 17), "big.jpg", "image/jpeg")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDeleteFileToleratesMissingAndURLs(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.DeleteFile("does-not-exist.png"))
	assert.NoError(t, s.DeleteFile(""))

	filename, err := s.SaveFile([]byte("x"), "bus.webp", "image/webp")
	require.NoError(t, err)

	// References may arrive as full URLs; only the basename counts.
	require.NoError(t, s.DeleteFile("http://localhost:8080/uploads/"+filename))
	assert.False(t, s.FileExists(filename))
}
