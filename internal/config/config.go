package config

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`

	// Runtime computed values
	FileMode    fs.FileMode `toml:"-"`
	HasFileMode bool        `toml:"-"`
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the upload storage configuration.
type StorageConfig struct {
	SaveDir     string `toml:"save_dir"`
	Mode        string `toml:"mode"`  // octal permission string, e.g. "644"
	Owner       string `toml:"owner"` // user name or id; empty means leave ownership alone
	ChownHelper string `toml:"chown_helper"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It is called once at startup; any error here is fatal and the process
// must not start serving.
func (c *Config) ParseAndValidate() error {
	if c.Storage.SaveDir == "" {
		return fmt.Errorf("save_dir is required")
	}

	if c.Storage.Mode != "" {
		bits, err := parseMode(c.Storage.Mode)
		if err != nil {
			return fmt.Errorf("invalid mode %q: %w", c.Storage.Mode, err)
		}
		c.FileMode = bits
		c.HasFileMode = true
	}

	return nil
}

// parseMode parses an octal permission string (e.g. "644") into file mode bits.
func parseMode(modeStr string) (fs.FileMode, error) {
	bits, err := strconv.ParseUint(modeStr, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("not a valid octal number: %s", modeStr)
	}
	return fs.FileMode(bits), nil
}
