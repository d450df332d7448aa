package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	BaseURL        string
	CookieHashKey  []byte
	CookieBlockKey []byte

	Location *time.Location
	DevMode  bool
}

// FromEnv reads the environment, after loading .env when one exists.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf(".env: %w", err)
	}

	cfg := Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		BaseURL:    getenv("BASE_URL", "http://localhost:8080"),
		DevMode:    strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}

	tz := getenv("TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	hashKey := os.Getenv("COOKIE_HASH_KEY")
	blockKey := os.Getenv("COOKIE_BLOCK_KEY")
	if hashKey == "" || blockKey == "" {
		if !cfg.DevMode {
			return Config{}, fmt.Errorf("COOKIE_HASH_KEY and COOKIE_BLOCK_KEY are required (32 and 32/16/24 bytes base64); set DEV_MODE=1 for throwaway keys")
		}
		log.Printf("config: DEV_MODE set, using ephemeral cookie keys")
		cfg.CookieHashKey = securecookie.GenerateRandomKey(32)
		cfg.CookieBlockKey = securecookie.GenerateRandomKey(32)
		return cfg, nil
	}

	var derr error
	cfg.CookieHashKey, derr = decodeB64(hashKey)
	if derr != nil {
		return Config{}, fmt.Errorf("COOKIE_HASH_KEY: %w", derr)
	}
	cfg.CookieBlockKey, derr = decodeB64(blockKey)
	if derr != nil {
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY: %w", derr)
	}
	switch len(cfg.CookieBlockKey) {
	case 16, 24, 32:
	default:
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY must decode to 16, 24 or 32 bytes (got %d)", len(cfg.CookieBlockKey))
	}

	return cfg, nil
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func decodeB64(s string) ([]byte, error) {
	b, err := os.ReadFile(s)
	if err == nil {
		// allow pointing to file path for k8s secret mounts
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if dec, err := base64.StdEncoding.DecodeString(s); err == nil {
		return dec, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
