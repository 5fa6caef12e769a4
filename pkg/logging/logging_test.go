// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test logger setup and log file placement

package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/zshboot/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path := logging.LogFilePath()
	assert.Equal(t, filepath.Join(xdg.StateHome, "zshboot", "zshboot.log"), path)
}
