package service

import (
	"mime/multipart"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/haamee/haamee-api/internal/repository/dao"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, dao.InitTables(db))

	return db
}

// fakeStore records removals instead of touching the filesystem.
type fakeStore struct {
	saved   []string
	removed []string
}

func (f *fakeStore) Save(fh *multipart.FileHeader) (string, string, error) {
	name := "generated-" + fh.Filename
	f.saved = append(f.saved, name)

	return name, "uploads/" + name, nil
}

func (f *fakeStore) Remove(path string) error {
	f.removed = append(f.removed, path)

	return nil
}
