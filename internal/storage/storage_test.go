package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestStore_SaveGeneratesFreshName(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	fh := multipartFileHeader(t, "report.pdf", "hello")
	name, path, err := store.Save(fh)
	require.NoError(t, err)

	assert.NotEqual(t, "report.pdf", name)
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestStore_SaveKeepsNoExtension(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	fh := multipartFileHeader(t, "LICENSE", "text")
	name, _, err := store.Save(fh)
	require.NoError(t, err)
	assert.NotContains(t, name, ".")
}

func TestStore_RemoveToleratesMissingFile(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	assert.NoError(t, store.Remove(filepath.Join(store.Dir(), "never-existed.pdf")))
	assert.NoError(t, store.Remove(""))
}

func TestStore_RemoveDeletesFile(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	fh := multipartFileHeader(t, "doc.txt", "bye")
	_, path, err := store.Save(fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is still fine.
	assert.NoError(t, store.Remove(path))
}
