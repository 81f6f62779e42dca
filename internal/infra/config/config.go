package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Nombres de las env vars.
const (
	KeyBackendURL      = "BACKEND_URL"
	KeyBackendTimeout  = "BACKEND_TIMEOUT"
	KeyHTTPAddr        = "HTTP_ADDR"
	KeyDatabaseURL     = "DATABASE_URL"
	KeyDiscordToken    = "DISCORD_BOT_TOKEN"
	KeyDiscordGuild    = "DISCORD_GUILD_ID"
	KeyWebhookSecret   = "WEBHOOK_SECRET"
	KeyExpectedTools   = "EXPECTED_TOOLS"
	KeyNumberLocale    = "NUMBER_LOCALE"
	KeyLogLevel        = "LOG_LEVEL"
	KeySnapshotTTLDays = "SNAPSHOT_TTL_DAYS"
	KeyConfigFile      = "CONFIG_FILE"
	KeyPublicURL       = "PUBLIC_URL"
)

type Config struct {
	BackendURL     string
	BackendTimeout time.Duration
	HTTPAddr       string // default :8080
	DatabaseURL    string // vacío => sin snapshots
	DiscordToken   string
	DiscordGuild   string
	WebhookSecret  string
	PublicURL      string // base de links a /reports/{id}

	// display
	ExpectedTools int
	NumberLocale  language.Tag

	LogLevel        string
	SnapshotTTLDays int
}

// fileSettings: lo que se puede poner en el YAML de CONFIG_FILE.
type fileSettings struct {
	ExpectedTools int    `yaml:"expected_tools"`
	NumberLocale  string `yaml:"number_locale"`
	HTTPAddr      string `yaml:"http_addr"`
	BackendURL    string `yaml:"backend_url"`
}

func defaults() Config {
	return Config{
		BackendURL:      "http://localhost:8000",
		BackendTimeout:  90 * time.Second,
		HTTPAddr:        ":8080",
		ExpectedTools:   12,
		NumberLocale:    language.English,
		SnapshotTTLDays: 30,
	}
}

// Load lee .yaml (si CONFIG_FILE está) y después env. Corta el proceso si
// falta alguna de las keys requeridas por el binario.
func Load(required ...string) Config {
	cfg, err := Parse(os.Getenv, required...)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Parse es Load sin efectos: getenv inyectable y error en vez de Fatal.
func Parse(getenv func(string) string, required ...string) (Config, error) {
	cfg := defaults()

	if path := getenv(KeyConfigFile); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}

	var errs []error
	for _, k := range required {
		if strings.TrimSpace(getenv(k)) == "" {
			errs = append(errs, fmt.Errorf("faltante env %s", k))
		}
	}

	str := func(k string, dst *string) {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			*dst = v
		}
	}
	str(KeyBackendURL, &cfg.BackendURL)
	str(KeyHTTPAddr, &cfg.HTTPAddr)
	str(KeyDatabaseURL, &cfg.DatabaseURL)
	str(KeyDiscordToken, &cfg.DiscordToken)
	str(KeyDiscordGuild, &cfg.DiscordGuild)
	str(KeyWebhookSecret, &cfg.WebhookSecret)
	str(KeyPublicURL, &cfg.PublicURL)
	str(KeyLogLevel, &cfg.LogLevel)

	if v := getenv(KeyBackendTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s=%q: duración inválida", KeyBackendTimeout, v))
		} else {
			cfg.BackendTimeout = d
		}
	}
	if v := getenv(KeyExpectedTools); v != "" {
		if err := positive(KeyExpectedTools, v, &cfg.ExpectedTools); err != nil {
			errs = append(errs, err)
		}
	}
	if v := getenv(KeySnapshotTTLDays); v != "" {
		if err := positive(KeySnapshotTTLDays, v, &cfg.SnapshotTTLDays); err != nil {
			errs = append(errs, err)
		}
	}
	if v := getenv(KeyNumberLocale); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", KeyNumberLocale, v, err))
		} else {
			cfg.NumberLocale = tag
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var fs fileSettings
	if err := yaml.Unmarshal(b, &fs); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fs.ExpectedTools > 0 {
		c.ExpectedTools = fs.ExpectedTools
	}
	if fs.HTTPAddr != "" {
		c.HTTPAddr = fs.HTTPAddr
	}
	if fs.BackendURL != "" {
		c.BackendURL = fs.BackendURL
	}
	if fs.NumberLocale != "" {
		tag, err := language.Parse(fs.NumberLocale)
		if err != nil {
			return fmt.Errorf("%s: number_locale %q: %w", path, fs.NumberLocale, err)
		}
		c.NumberLocale = tag
	}
	return nil
}

func positive(key, v string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fmt.Errorf("%s=%q: se espera entero > 0", key, v)
	}
	*dst = n
	return nil
}

// SnapshotTTL en duración.
func (c Config) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLDays) * 24 * time.Hour
}
