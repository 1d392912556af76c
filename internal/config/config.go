package config

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// defaultJWTSecret is only acceptable in development environments.
const defaultJWTSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	BcryptCost    int           `yaml:"bcrypt_cost"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("MENTORLINK_ADDR", ":8080"),
		JWTSecret:     getEnv("MENTORLINK_JWT_SECRET", defaultJWTSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("MENTORLINK_DATABASE_PATH", "mentorlink.db"),
		TokenDuration: 1 * time.Hour,
		BcryptCost:    bcrypt.DefaultCost,
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

// Validate checks the loaded configuration for values that are unsafe or
// unusable. The default JWT secret is rejected unless MENTORLINK_ENV is
// "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == defaultJWTSecret && os.Getenv("MENTORLINK_ENV") != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set MENTORLINK_JWT_SECRET")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
