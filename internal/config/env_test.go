package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()

	assert.Equal(t, "8080", env.Port)
	assert.Empty(t, env.DBDriver)
	assert.Empty(t, env.AllowedOrigins)
}

func TestLoadEnvFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "DB_DRIVER=sqlite\nDB_DSN=file::memory:\nCORS_ALLOWED_ORIGINS=http://a.test, ,http://b.test\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "9090")
	// godotenv does not override variables that are already set, so clear
	// the ones the file provides and restore them afterwards.
	for _, k := range []string{"DB_DRIVER", "DB_DSN", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	env := LoadEnv()

	assert.Equal(t, "9090", env.Port)
	assert.Equal(t, "sqlite", env.DBDriver)
	assert.Equal(t, "file::memory:", env.DBDSN)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.AllowedOrigins)
}
