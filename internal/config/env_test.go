package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingKeys = []string{"DB_PATH", "PLAYER_ID", "TUNING_PATH", "TARGETING_WORKERS", "START_FROM_GAME"}

// clearEnv unsets the keys for the duration of the test; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range settingKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadSettingsDefaultsWithoutEnvFile(t *testing.T) {
	clearEnv(t)

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PLAYER_ID=p-42\nTARGETING_WORKERS=2\nSTART_FROM_GAME=true\nDB_PATH=\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "p-42", s.PlayerID)
	assert.Equal(t, 2, s.TargetingWorkers)
	assert.True(t, s.StartFromGame)
	assert.Empty(t, s.DBPath, "an explicitly empty DB_PATH selects the in-memory ledger")
}

func TestLoadSettingsRejectsBadWorkers(t *testing.T) {
	clearEnv(t)
	t.Setenv("TARGETING_WORKERS", "zero")

	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestGetEnvVariable(t *testing.T) {
	_, err := GetEnvVariable("")
	assert.Error(t, err)

	t.Setenv("BREAKPOINT_TEST_VAR", "x")
	v, err := GetEnvVariable("BREAKPOINT_TEST_VAR")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}
