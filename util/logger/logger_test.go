package logger

import (
	"bytes"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(logger.DebugLevel, buf)
	l.WithField("table", "users").Debug("scan finished")

	out := buf.String()
	require.Contains(t, out, "scan finished")
	require.Contains(t, out, "table=users")
}

func TestConfigure(t *testing.T) {
	prev := L.GetLevel()
	defer L.SetLevel(prev)

	require.NoError(t, Configure("debug"))
	require.Equal(t, logger.DebugLevel, L.GetLevel())
	require.Error(t, Configure("loud"))
}
