package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Admin AdminConfig
	Mongo MongoConfig
}

// AdminConfig describes the bootstrap administrator account seeded on first
// start when no user with that email exists yet.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,     default=Administrador Padrão"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@email.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin1234"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todo_api"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
