package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Level string `yaml:"level"`
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}

func (c *LogConfig) Validate() error {
	_, err := logrus.ParseLevel(c.Level)
	return errors.Wrapf(err, "invalid level '%s'", c.Level)
}
