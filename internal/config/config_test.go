package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.Equal(t, CatalogBackendFixture, cfg.Catalog.Backend)
	assert.Equal(t, ChatBackendMemory, cfg.Chat.Backend)
	assert.Empty(t, cfg.Chat.NATSURL)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, CatalogBackendFixture, cfg.Catalog.Backend)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte(`
server:
  http_port: "9000"
catalog:
  backend: spanner
  spanner_database: projects/p/instances/i/databases/d
chat:
  backend: mongo
  mongo_uri: mongodb://mongo:27017
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.HTTPPort)
	assert.Equal(t, CatalogBackendSpanner, cfg.Catalog.Backend)
	assert.Equal(t, "projects/p/instances/i/databases/d", cfg.Catalog.SpannerDatabase)
	assert.Equal(t, ChatBackendMongo, cfg.Chat.Backend)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http_port: \"9000\"\n"), 0o600))

	t.Setenv("HTTP_PORT", "7777")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7777", cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	t.Run("unknown catalog backend", func(t *testing.T) {
		cfg := Default()
		cfg.Catalog.Backend = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown chat backend", func(t *testing.T) {
		cfg := Default()
		cfg.Chat.Backend = "redis"
		assert.Error(t, cfg.Validate())
	})

	t.Run("spanner backend requires database", func(t *testing.T) {
		cfg := Default()
		cfg.Catalog.Backend = CatalogBackendSpanner
		cfg.Catalog.SpannerDatabase = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("mongo backend requires uri", func(t *testing.T) {
		cfg := Default()
		cfg.Chat.Backend = ChatBackendMongo
		cfg.Chat.MongoURI = ""
		assert.Error(t, cfg.Validate())
	})
}
