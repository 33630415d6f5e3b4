package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the host shell's own configuration, not the user's settings.
type Config struct {
	Debug bool `yaml:"debug"`
	HTTP  struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Catalog struct {
		// Manifest overrides the bundled song table when set.
		Manifest string `yaml:"manifest"`
	} `yaml:"catalog"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default mirrors the config written on first run.
func Default(dataDir string) *Config {
	c := &Config{}
	c.Debug = false
	c.HTTP.Listen = "127.0.0.1:8723"
	c.Data.Dir = dataDir
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// LogLevel is the effective level: debug forces "debug".
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	return errors.Wrap(os.WriteFile(path, b, 0o644), "write config")
}
