package config

import (
	"os"

	"go-flatdb/pkg/customerrors"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Engine *EngineConfig `yaml:"engine"`
	Log    *LogConfig    `yaml:"log"`
}

func New() *AppConfig {
	return &AppConfig{
		Engine: NewEngineConfig(),
		Log:    NewLogConfig(),
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*AppConfig, error) {
	cfg := New()
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, customerrors.IOf(err, "failed to read config '%s'", path)
	}

	if err := yaml.Unmarshal(blob, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config '%s'", path)
	}

	if cfg.Engine == nil {
		cfg.Engine = NewEngineConfig()
	}
	if cfg.Log == nil {
		cfg.Log = NewLogConfig()
	}
	return cfg, cfg.Validate()
}

func (c *AppConfig) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return errors.Wrap(err, "engine")
	}
	return errors.Wrap(c.Log.Validate(), "log")
}
