// Package config loads the htmlgen.json project file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlgen.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete htmlgen.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Output is the build output directory.
	Output string `json:"output,omitempty"`

	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`
}

// DevConfig configures the preview server.
type DevConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// Reload enables live reload of previewed pages.
	Reload bool `json:"reload,omitempty"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `json:"pretty,omitempty"`
}

// PublishConfig configures the publish command.
type PublishConfig struct {
	// Bucket is the destination S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
		Dev: DevConfig{
			Host:   DefaultHost,
			Port:   DefaultPort,
			Reload: true,
		},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir loads htmlgen.json from the current directory.
// A missing file is not an error; defaults are returned instead.
func LoadFromWorkingDir() (*Config, error) {
	path := filepath.Join(".", ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults fills in zero-valued fields after decoding. A file
// that sets "dev": {} would otherwise wipe the defaults.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return fmt.Errorf("dev.port %d out of range 1-65535", c.Dev.Port)
	}
	return nil
}

// DevAddr returns the preview server listen address.
func (c *Config) DevAddr() string {
	return fmt.Sprintf("%s:%d", c.Dev.Host, c.Dev.Port)
}
