package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML strings like "90s" or "1h".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// RedisConfig holds the session store connection settings.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	Prefix   string   `yaml:"prefix"`
	TTL      Duration `yaml:"ttl"`
}

// ServeConfig holds the server settings.
type ServeConfig struct {
	Addr        string      `yaml:"addr"`
	MachineFile string      `yaml:"machine_file"`
	StepLimit   int         `yaml:"step_limit"`
	Redis       RedisConfig `yaml:"redis"`
}

// DefaultServeConfig returns the settings used when no config file is given.
func DefaultServeConfig() ServeConfig {
	return ServeConfig{
		Addr:      ":8080",
		StepLimit: 100000,
	}
}

// LoadServeConfig reads a YAML config file, filling unset fields from the
// defaults. An empty path returns the defaults.
func LoadServeConfig(path string) (ServeConfig, error) {
	cfg := DefaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}
