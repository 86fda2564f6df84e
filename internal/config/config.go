package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt formats configuration errors
	"log"     // log reports a missing .env file
	"strconv" // strconv validates the port number

	"github.com/joho/godotenv"         // godotenv applies a local .env file to the process environment
	"github.com/labstack/gommon/bytes" // bytes parses size limits the way echo's BodyLimit does
)

// DefaultPort is used when PORT is unset.
const DefaultPort = "5000"

// Config holds all runtime configuration values.  It is built once at
// startup and passed by value to the router; nothing mutates it afterwards.
type Config struct {
	Env       string      // application environment label (APP_ENV)
	Port      string      // HTTP port to listen on (PORT)
	LogLevel  string      // echo logger level (LOG_LEVEL)
	BodyLimit string      // maximum request body size in echo BodyLimit syntax (BODY_LIMIT)
	Cache     CacheConfig // optional Redis response cache
	Events    EventConfig // optional RabbitMQ chat events
}

// LoadDotEnv applies variables from a local .env file, if one exists.
// Variables already present in the environment win.  A missing file only
// produces a warning since the file is optional.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}
}

// Load reads configuration values from environment variables and returns a
// Config.  An unusable PORT or BODY_LIMIT is an error; every other value
// falls back to its default.
func Load() (Config, error) {
	cfg := Config{
		Env:       envStr("APP_ENV", "development"),
		Port:      envStr("PORT", DefaultPort),
		LogLevel:  envStr("LOG_LEVEL", "info"),
		BodyLimit: envStr("BODY_LIMIT", "100K"),
		Cache:     LoadCacheConfig(),
		Events:    LoadEventConfig(),
	}
	n, err := strconv.Atoi(cfg.Port)
	if err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if _, err := bytes.Parse(cfg.BodyLimit); err != nil {
		return Config{}, fmt.Errorf("invalid BODY_LIMIT %q: %w", cfg.BodyLimit, err)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string { return ":" + c.Port }
