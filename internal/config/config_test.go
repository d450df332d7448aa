package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/securecookie"
)

func TestFromEnvRequiresKeys(t *testing.T) {
	t.Setenv("COOKIE_HASH_KEY", "")
	t.Setenv("COOKIE_BLOCK_KEY", "")
	t.Setenv("DEV_MODE", "")
	if _, err := FromEnv(); err == nil {
		t.Fatal("FromEnv() without keys expected error")
	}

	t.Setenv("DEV_MODE", "1")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() in dev mode: %v", err)
	}
	if len(cfg.CookieHashKey) != 32 || len(cfg.CookieBlockKey) != 32 {
		t.Errorf("ephemeral keys = %d/%d bytes", len(cfg.CookieHashKey), len(cfg.CookieBlockKey))
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestFromEnvKeys(t *testing.T) {
	hash := base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32))
	keyFile := filepath.Join(t.TempDir(), "block")
	if err := os.WriteFile(keyFile, []byte(base64.RawStdEncoding.EncodeToString(securecookie.GenerateRandomKey(16))+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DEV_MODE", "")
	t.Setenv("COOKIE_HASH_KEY", hash)
	t.Setenv("COOKIE_BLOCK_KEY", keyFile)
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if len(cfg.CookieBlockKey) != 16 {
		t.Errorf("block key = %d bytes, want 16", len(cfg.CookieBlockKey))
	}
	if cfg.Location.String() != "UTC" || cfg.ListenAddr != ":9000" {
		t.Errorf("cfg = %+v", cfg)
	}

	t.Setenv("COOKIE_BLOCK_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() with a 5 byte block key expected error")
	}
}
