package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DBDSN string `env:"DB_DSN" envDefault:"app:apppass@tcp(127.0.0.1:3306)/axiom?charset=utf8mb4&parseTime=true&loc=Local"`

	JWTSecret     string `env:"JWT_SECRET,notEmpty"`
	JWTExpireDays int    `env:"JWT_EXPIRE_DAYS" envDefault:"7"`

	GroqAPIKey      string        `env:"GROQ_API_KEY"`
	GroqBaseURL     string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	CerebrasAPIKey  string        `env:"CEREBRAS_API_KEY"`
	CerebrasBaseURL string        `env:"CEREBRAS_BASE_URL" envDefault:"https://api.cerebras.ai/v1"`
	AITimeout       time.Duration `env:"AI_TIMEOUT" envDefault:"90s"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"30s"`

	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config. JWT_SECRET is required;
// everything else carries a development default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTExpireDays <= 0 {
		cfg.JWTExpireDays = 7
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// TokenTTL is the lifetime of issued session tokens.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpireDays) * 24 * time.Hour
}
