package tftlayout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the preferences of the host. It is read once and passed in;
// nothing in this package reads it from global state.
type Config struct {
	Language string         `toml:"language"`
	Canvas   CanvasConfig   `toml:"canvas"`
	Generate GenerateConfig `toml:"generate"`
	Store    StoreConfig    `toml:"store"`
}

// CanvasConfig sets the size of a new canvas.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// GenerateConfig sets the defaults for Generate.
type GenerateConfig struct {
	Mode         string `toml:"mode"`
	Transparency bool   `toml:"transparency"`
	OutputDir    string `toml:"output_dir"`
}

// StoreConfig locates the layout library.
type StoreConfig struct {
	Path string `toml:"path"`
}

// Languages lists the supported values of Config.Language.
var Languages = []string{"en", "pt"}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Language: "en",
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Generate: GenerateConfig{
			Mode:      Embedded.String(),
			OutputDir: ".",
		},
		Store: StoreConfig{
			Path: "layouts.db",
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tftlayout/config.toml or its
// platform equivalent.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "tftlayout", "config.toml")
}

// LoadConfig reads the TOML file at path over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, newError(ErrIO, "config", path, err)
	}

	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, newError(ErrFormat, "config", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, newError(ErrValidation, "config", path, err)
	}

	return cfg, nil
}

// Validate checks every value is usable.
func (c *Config) Validate() error {
	if err := validSize(c.Canvas.Width, c.Canvas.Height); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	if _, err := ParseMode(c.Generate.Mode); err != nil {
		return err
	}
	for _, l := range Languages {
		if c.Language == l {
			return nil
		}
	}
	return fmt.Errorf("unsupported language %q", c.Language)
}

// Save writes c to path as TOML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return newError(ErrIO, "config", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return newError(ErrIO, "config", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return newError(ErrIO, "config", path, err)
	}

	if err := f.Close(); err != nil {
		return newError(ErrIO, "config", path, err)
	}

	return nil
}
