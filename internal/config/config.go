package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog backends.
const (
	CatalogBackendFixture = "fixture"
	CatalogBackendSpanner = "spanner"
)

// Chat transcript backends.
const (
	ChatBackendMemory = "memory"
	ChatBackendMongo  = "mongo"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Catalog CatalogConfig `yaml:"catalog"`
	Chat    ChatConfig    `yaml:"chat"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	HTTPPort string `yaml:"http_port"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CatalogConfig selects and configures the catalog provider.
type CatalogConfig struct {
	Backend         string `yaml:"backend"`
	SpannerDatabase string `yaml:"spanner_database"`
}

// ChatConfig selects and configures the transcript store and notifier.
type ChatConfig struct {
	Backend       string `yaml:"backend"`
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	NATSURL       string `yaml:"nats_url"`
	NATSSubject   string `yaml:"nats_subject"`
}

// Default returns the configuration used when no file or environment
// overrides are present: fixture catalog, in-memory chat, no NATS.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{HTTPPort: "8080"},
		Logging: LoggingConfig{Level: "info"},
		Catalog: CatalogConfig{
			Backend:         CatalogBackendFixture,
			SpannerDatabase: "projects/test-project/instances/dev-instance/databases/farmlink-db",
		},
		Chat: ChatConfig{
			Backend:       ChatBackendMemory,
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "farmlink",
			NATSSubject:   "chat.messages",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// it exists), then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	setFromEnv(&c.Server.HTTPPort, "HTTP_PORT")
	setFromEnv(&c.Logging.Level, "LOG_LEVEL")
	setFromEnv(&c.Catalog.Backend, "CATALOG_BACKEND")
	setFromEnv(&c.Catalog.SpannerDatabase, "SPANNER_DATABASE")
	setFromEnv(&c.Chat.Backend, "CHAT_BACKEND")
	setFromEnv(&c.Chat.MongoURI, "MONGO_URI")
	setFromEnv(&c.Chat.MongoDatabase, "MONGO_DATABASE")
	setFromEnv(&c.Chat.NATSURL, "NATS_URL")
	setFromEnv(&c.Chat.NATSSubject, "NATS_SUBJECT")
}

func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

// Validate rejects unknown backend selections early, before any client
// connections are attempted.
func (c *Config) Validate() error {
	switch c.Catalog.Backend {
	case CatalogBackendFixture, CatalogBackendSpanner:
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Catalog.Backend)
	}

	switch c.Chat.Backend {
	case ChatBackendMemory, ChatBackendMongo:
	default:
		return fmt.Errorf("unknown chat backend %q", c.Chat.Backend)
	}

	if c.Catalog.Backend == CatalogBackendSpanner && c.Catalog.SpannerDatabase == "" {
		return fmt.Errorf("spanner catalog backend requires a database")
	}
	if c.Chat.Backend == ChatBackendMongo && c.Chat.MongoURI == "" {
		return fmt.Errorf("mongo chat backend requires a URI")
	}
	return nil
}
