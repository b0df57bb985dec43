package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	ShopDomain      string `yaml:"shop_domain"`
	StorefrontToken string `yaml:"storefront_token"`
	APIVersion      string `yaml:"api_version"`
	HTTPTimeoutSecs int    `yaml:"http_timeout_seconds"`

	SessionDB string `yaml:"session_db"`

	// Optional Admin API access, used for the navigation menu.
	AdminShop  string `yaml:"admin_shop"`
	AdminToken string `yaml:"admin_token"`

	MenuPrefixes []string `yaml:"menu_prefixes"`
}

func Default() Config {
	return Config{
		AppEnv:          "dev",
		LogLevel:        "info",
		APIVersion:      "2024-01",
		HTTPTimeoutSecs: 30,
		SessionDB:       ".storefront/session.db",
		MenuPrefixes:    []string{"MAN", "WOMAN"},
	}
}

// Load reads .env when present, then the YAML file named by
// STOREFRONT_CONFIG, then the environment. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("STOREFRONT_CONFIG"); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ShopDomain = getEnv("SHOP_DOMAIN", cfg.ShopDomain)
	cfg.StorefrontToken = getEnv("STOREFRONT_TOKEN", cfg.StorefrontToken)
	cfg.APIVersion = getEnv("STOREFRONT_API_VERSION", cfg.APIVersion)
	cfg.HTTPTimeoutSecs = getEnvInt("HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeoutSecs)
	cfg.SessionDB = getEnv("SESSION_DB", cfg.SessionDB)
	cfg.AdminShop = getEnv("ADMIN_SHOP", cfg.AdminShop)
	cfg.AdminToken = getEnv("ADMIN_TOKEN", cfg.AdminToken)
	cfg.MenuPrefixes = getEnvList("MENU_PREFIXES", cfg.MenuPrefixes)

	return cfg, nil
}

// LoadFile overlays the non-empty values of a YAML file onto cfg.
func LoadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

func (c Config) AdminEnabled() bool {
	return c.AdminShop != "" && c.AdminToken != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := cast.ToIntE(v)
	if err != nil || n <= 0 {
		return def
	}

	return n
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
