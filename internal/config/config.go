package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort          string
	ServerReadTimeout   time.Duration
	ServerWriteTimeout  time.Duration
	ServerIdleTimeout   time.Duration
	RequestTimeout      time.Duration
	UsersDatabaseURL    string
	ProductsDatabaseURL string
	DBMaxConns          int32
	DBMinConns          int32
	JWTSecret           string
	TokenTTL            time.Duration
	BcryptCost          int
	AdminKey            string
	CORSOrigins         []string
	StaticDir           string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "3000"),
		ServerReadTimeout:   getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		ServerWriteTimeout:  getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:   getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 30*time.Second),
		UsersDatabaseURL:    strings.TrimSpace(os.Getenv("USERS_DATABASE_URL")),
		ProductsDatabaseURL: strings.TrimSpace(os.Getenv("PRODUCTS_DATABASE_URL")),
		DBMaxConns:          int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getInt("DB_MIN_CONNS", 2)),
		JWTSecret:           strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:            getDuration("TOKEN_TTL", time.Hour),
		BcryptCost:          getInt("BCRYPT_COST", 10),
		AdminKey:            strings.TrimSpace(os.Getenv("ADMIN_KEY")),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "*")),
		StaticDir:           getEnv("STATIC_DIR", "./public"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	// No built-in fallback secret: an unset JWT_SECRET is a startup error,
	// never a silent default.
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.UsersDatabaseURL == "" {
		return fmt.Errorf("USERS_DATABASE_URL is required")
	}

	if c.ProductsDatabaseURL == "" {
		return fmt.Errorf("PRODUCTS_DATABASE_URL is required")
	}

	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}

	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
