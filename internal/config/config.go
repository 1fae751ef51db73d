package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything tunable at startup. Values come from the
// environment, with an optional .env.local overlay for development.
type Config struct {
	Addr           string  `env:"APP_ADDR" envDefault:":8080"`
	Env            string  `env:"APP_ENV" envDefault:"development"`
	JWTSecret      string  `env:"JWT_SECRET,required"`
	AdminPassword  string  `env:"ADMIN_PASSWORD" envDefault:"admin12345"`
	UserPassword   string  `env:"USER_PASSWORD" envDefault:"user12345"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	SeedFile       string  `env:"SEED_FILE"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
