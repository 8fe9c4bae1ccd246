// Package config loads filemaid's runtime defaults. Configuration is
// layered: embedded defaults, then the user config file from the XDG
// config dir, then FILEMAID_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/logging"
)

//go:embed config.toml
var defaultConfig []byte

// DefaultMagicBytes is the fallback sniff-buffer size when no
// configuration can be loaded at all.
const DefaultMagicBytes = 1024

// Config holds filemaid's runtime defaults
type Config struct {
	// MimeMagicBytes is the default number of leading bytes read when
	// sniffing MIME types; individual mime conditions may override it.
	MimeMagicBytes int
}

// Load builds the layered configuration
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	userPath := filepath.Join(xdg.ConfigHome, "filemaid", "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to load config from %s", userPath)
		}
	}

	// FILEMAID_MIME_MAGIC_BYTES -> mime.magic_bytes
	if err := k.Load(env.Provider("FILEMAID_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "FILEMAID_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to load environment overrides")
	}

	return &Config{
		MimeMagicBytes: k.Int("mime.magic_bytes"),
	}, nil
}

var (
	once   sync.Once
	cached *Config
)

// Get returns the process-wide configuration, loading it on first use.
// Load failures fall back to the built-in defaults.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			logger := logging.GetLogger("config")
			logger.Warn().Err(err).Msg("Failed to load configuration, using built-in defaults")
			cfg = &Config{MimeMagicBytes: DefaultMagicBytes}
		}
		if cfg.MimeMagicBytes <= 0 {
			cfg.MimeMagicBytes = DefaultMagicBytes
		}
		cached = cfg
	})
	return cached
}
