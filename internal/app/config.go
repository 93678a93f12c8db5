package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ltoaccount/internal/codec"
	"ltoaccount/internal/domain"
)

// ConfigFile is the config file name inside the home directory.
const ConfigFile = "config.yaml"

// Config holds runtime options for building the app.
type Config struct {
	Home     string         // config directory, e.g. $HOME/.lto
	Keystore string         // keystore file, relative to Home unless absolute
	Encoding codec.Encoding // textual encoding for CLI input and output
	LogLevel string         // slog level name
	ChainID  domain.ChainID // network byte for derived addresses
}

// fileConfig is the YAML shape of config.yaml.
type fileConfig struct {
	Keystore string `yaml:"keystore"`
	Encoding string `yaml:"encoding"`
	LogLevel string `yaml:"logLevel"`
	Network  string `yaml:"network"`
}

// DefaultConfig returns the built-in defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home:     home,
		Encoding: codec.Default,
		LogLevel: "info",
		ChainID:  domain.MainNet,
	}
}

// LoadConfig reads path (or <home>/config.yaml when path is empty) over the
// defaults, then applies LTO_* environment overrides. A missing file is not
// an error.
func LoadConfig(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	if path == "" {
		path = filepath.Join(home, ConfigFile)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := merge(&cfg, parsed); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge copies the non-empty fields of src into dst.
func merge(dst *Config, src fileConfig) error {
	if src.Keystore != "" {
		dst.Keystore = src.Keystore
	}
	if src.Encoding != "" {
		enc, err := codec.ParseEncoding(src.Encoding)
		if err != nil {
			return err
		}
		dst.Encoding = enc
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Network != "" {
		chain, err := ParseNetwork(src.Network)
		if err != nil {
			return err
		}
		dst.ChainID = chain
	}
	return nil
}

// ApplyEnvOverrides applies LTO_KEYSTORE, LTO_ENCODING, LTO_LOG_LEVEL and LTO_NETWORK.
func ApplyEnvOverrides(cfg *Config) error {
	return merge(cfg, fileConfig{
		Keystore: strings.TrimSpace(os.Getenv("LTO_KEYSTORE")),
		Encoding: strings.TrimSpace(os.Getenv("LTO_ENCODING")),
		LogLevel: strings.TrimSpace(os.Getenv("LTO_LOG_LEVEL")),
		Network:  strings.TrimSpace(os.Getenv("LTO_NETWORK")),
	})
}

// ParseNetwork maps "mainnet", "testnet" or a single ASCII letter chain id.
// Letters are upper-cased, so "t" is TestNet.
func ParseNetwork(s string) (domain.ChainID, error) {
	switch strings.ToLower(s) {
	case "mainnet":
		return domain.MainNet, nil
	case "testnet":
		return domain.TestNet, nil
	}
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			return domain.ChainID(c), nil
		}
	}
	return 0, fmt.Errorf("unknown network %q", s)
}
