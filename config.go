package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt      string `yaml:"prompt"`
	HaltOnError bool   `yaml:"halt_on_error"`
	LogLevel    string `yaml:"log_level"`
	// Color is one of auto, always or never.
	Color    string         `yaml:"color"`
	Commands CommandsConfig `yaml:"commands"`
	// Bindings are defined in every new session.
	Bindings map[string]yaml.Node `yaml:"bindings"`
}

type CommandsConfig struct {
	Allow []string `yaml:"allow"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:   "$ ",
		LogLevel: "info",
		Color:    "auto",
	}
}

// defaultConfigPath is $XDG_CONFIG_HOME/psh/config.yaml or its
// os.UserConfigDir equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "psh", "config.yaml")
}

// LoadConfig reads a YAML config on top of the defaults.
// If path is empty the default location is tried and may be absent.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return errors.Errorf("color must be auto, always or never, found %q", c.Color)
	}
	_, err := c.bindingValues()
	return err
}

// bindingValues converts the configured bindings to Values.
// Negative integers become Integer, other integers Whole,
// and everything else a string.
func (c *Config) bindingValues() (map[string]Value, error) {
	vals := make(map[string]Value, len(c.Bindings))
	for name, node := range c.Bindings {
		if !isIdent(name) {
			return nil, errors.Errorf("binding name %q is not an identifier", name)
		}
		if node.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("binding %s: value must be a scalar", name)
		}
		if node.ShortTag() == "!!int" {
			var i int64
			if err := node.Decode(&i); err == nil && i < 0 {
				vals[name] = Integer(i)
				continue
			}
			var u uint64
			if err := node.Decode(&u); err != nil {
				return nil, errors.Wrapf(err, "binding %s", name)
			}
			vals[name] = Whole(u)
			continue
		}
		vals[name] = Str(node.Value)
	}
	return vals, nil
}
