package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/hubastard/glrender/engine/colors"
	"github.com/hubastard/glrender/engine/logx"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string       `yaml:"title"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	VSync      bool         `yaml:"vsync"`
	ClearColor colors.Color `yaml:"clear_color"` // RGBA
	LogLevel   string       `yaml:"log_level"`   // debug, info, warn, error
	ShaderDir  string       `yaml:"shader_dir"`
	FovDeg     float32      `yaml:"fov"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "glrender",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		ShaderDir:  "assets/shaders",
		FovDeg:     60,
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file is not an
// error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logx.Logger().Warn("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.FovDeg <= 0 || c.FovDeg >= 180 {
		return fmt.Errorf("invalid fov %v", c.FovDeg)
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
