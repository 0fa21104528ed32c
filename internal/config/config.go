package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

// LoadConfig builds the configuration from environment variables (with an
// optional .env file) and, when path is non-empty, overlays values from a
// YAML file.
func LoadConfig(path string) (*Config, error) {
	// .env is a convenience for local runs; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("PRANA_ADDR", ":3000"),
		JWTSecret:     getEnv("PRANA_JWT_SECRET", "supersecretkey"),
		APITimeout:    durationEnv("PRANA_API_TIMEOUT", 15*time.Second),
		DatabasePath:  getEnv("PRANA_DATABASE_PATH", "prana.db"),
		TokenDuration: durationEnv("PRANA_TOKEN_DURATION", 24*time.Hour),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %s", key, err, def)
			return def
		}
		return d
	}

	return def
}
