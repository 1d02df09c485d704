package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: "test"
  base_url: "localhost:3001"
  port: "3001"
  jwt_signing_key: "secret"
  uploads_dir: "./uploads"
  admin_username: "admin"
  admin_password: "123456"
  allowed_cors_domains:
    - "http://localhost:3000"

gin:
  mode: "test"

sqlite:
  path: "./haamee.db"
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "3001", conf.API.Port)
	assert.Equal(t, "admin", conf.API.AdminUsername)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "./haamee.db", conf.SQLite.Path)
	assert.Equal(t, "test", conf.Gin.Mode)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
