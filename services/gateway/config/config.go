package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultVersion  = "3.0.0"
	defaultTimeZone = "UTC"
	defaultDBPath   = "messages.db"
	sqliteDriver    = "sqlite3"

	// EnvSourcePassword names the environment variable holding the relational source password
	EnvSourcePassword = "SOURCE_DB_PASSWORD"
)

// DefaultMessageChannels holds the channel codes exposed when none are configured
var DefaultMessageChannels = []int{189, 187, 147, 190}

// SourceConfig describes the relational data source the metrics are computed from
type SourceConfig struct {
	Driver                  string `toml:"Driver"`
	Host                    string `toml:"Host"`
	Port                    int    `toml:"Port"`
	Database                string `toml:"Database"`
	User                    string `toml:"User"`
	ConnectTimeoutInSeconds uint32 `toml:"ConnectTimeoutInSeconds"`
	MaxOpenConns            int    `toml:"MaxOpenConns"`
}

// Config maps to the config.toml file for the metrics gateway
type Config struct {
	ListenAddress   string       `toml:"ListenAddress"`
	Version         string       `toml:"Version"`
	TimeZone        string       `toml:"TimeZone"`
	MessagesDBPath  string       `toml:"MessagesDBPath"`
	MessageChannels []int        `toml:"MessageChannels"`
	Source          SourceConfig `toml:"Source"`
}

// LoadConfig parses a TOML file into the Config struct
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyDefaults fills in the optional fields left empty in the file
func (cfg *Config) ApplyDefaults() {
	if len(cfg.Version) == 0 {
		cfg.Version = defaultVersion
	}
	if len(cfg.TimeZone) == 0 {
		cfg.TimeZone = defaultTimeZone
	}
	if len(cfg.MessagesDBPath) == 0 {
		cfg.MessagesDBPath = defaultDBPath
	}
	if len(cfg.MessageChannels) == 0 {
		cfg.MessageChannels = append([]int(nil), DefaultMessageChannels...)
	}
}

// RequiredEnvKeys returns the secrets that must be present in the environment or the .env file.
// A sqlite source is a local file and takes no password.
func (cfg *Config) RequiredEnvKeys() []string {
	if cfg.Source.Driver == sqliteDriver {
		return nil
	}

	return []string{EnvSourcePassword}
}

// Location resolves the configured time zone
func (cfg *Config) Location() (*time.Location, error) {
	if len(cfg.TimeZone) == 0 {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone '%s': %w", cfg.TimeZone, err)
	}

	return loc, nil
}
