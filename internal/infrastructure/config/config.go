package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie token. Deliberately without a
	// default: the process refuses to start when it is unset.
	SessionSecret string        `env:"SESSION_SECRET, required"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=12h"`

	SQLite     SQLiteConfig
	Redis      RedisConfig
	Candidates CandidatesConfig
	Admin      AdminSeedConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=school_voting.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// CandidatesConfig holds the static candidate lists, one comma-separated
// value per category.
type CandidatesConfig struct {
	Female []string `env:"CANDIDATES_FEMALE, default=Bu Andi,Bu Budi,Bu Cici"`
	Male   []string `env:"CANDIDATES_MALE,   default=Pak Dani,Pak Eko,Pak Fajar"`
}

// AdminSeedConfig describes the bootstrap admin account created at startup
// when its username is not taken yet. Leaving both values empty disables
// seeding.
type AdminSeedConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
