// Package storage persists uploaded documents on local disk. The metadata row
// in the database is the source of truth; the file itself is best-effort.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name and returns that name
// together with the full storage path. Names are unix-millis plus a random
// suffix plus the original extension, so concurrent uploads of the same file
// cannot collide.
func (s *Store) Save(fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("fh.Open -> %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("io.Copy -> %w", err)
	}

	return name, path, nil
}

// Remove deletes the backing file. A file that is already gone is not an
// error: the caller is about to (or already did) drop the metadata row, and a
// dangling record is tolerated silently.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}

	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}
