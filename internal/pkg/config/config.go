package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// ACCESS_TOKEN_SECRET signs and verifies bearer tokens.
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI,  default=mongodb://localhost:27017"`
	Host     string `env:"MONGO_HOST"`
	User     string `env:"DB_USER"`
	Pass     string `env:"DB_PASS"`
	Database string `env:"MONGO_DB,   default=house-hunter"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASS"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// ConnectionURI returns the MongoDB connection string. When MONGO_HOST is set
// an Atlas-style SRV URI is composed from DB_USER and DB_PASS; otherwise
// MONGO_URI is used as-is.
func (m MongoConfig) ConnectionURI() string {
	if m.Host == "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(m.User), url.QueryEscape(m.Pass), m.Host)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
