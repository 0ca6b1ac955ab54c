package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConsole(t *testing.T) {
	err := Init(&Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, Logger())
	require.True(t, Logger().Core().Enabled(0)) // info enabled at debug level
}

func TestInitJSON(t *testing.T) {
	err := Init(&Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.False(t, Logger().Core().Enabled(-1)) // debug disabled at warn level
}

func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init(&Config{}))
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init(&Config{Level: "loud", Format: "console"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log level")
}

func TestInitRejectsUnknownFormat(t *testing.T) {
	err := Init(&Config{Level: "info", Format: "xml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")
}
