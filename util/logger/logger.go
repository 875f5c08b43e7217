package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const TimestampFormat = "2006-01-02 15:04:05"

var L = New(logger.InfoLevel, os.Stderr)

func New(level logger.Level, out io.Writer) *logger.Logger {
	return &logger.Logger{
		Out:   out,
		Level: level,
		Hooks: make(logger.LevelHooks),
		Formatter: &prefixed.TextFormatter{
			TimestampFormat: TimestampFormat,
			FullTimestamp:   true,
			ForceFormatting: true,
		},
	}
}

// Configure sets the level of L from its textual name.
func Configure(level string) error {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level '%s'", level)
	}
	L.SetLevel(lvl)
	return nil
}
