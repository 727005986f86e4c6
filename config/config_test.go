package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-local/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, DefaultConfig, *cfg)
		assert.Equal(t, types.PlayerVsComputer, cfg.Mode())
		assert.Equal(t, 300*time.Millisecond, cfg.ComputerDelay())
	})

	t.Run("File overrides only what it sets", func(t *testing.T) {
		// Given: a file changing the mode and player two's colour
		path := writeConfig(t, `{
  "theme": {"colors": {"player_two": 196}},
  "game": {"default_mode": "pvp"}
}`)

		// When: loading it
		cfg, err := Load(path)

		// Then: the set values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, types.PlayerVsPlayer, cfg.Mode())
		assert.Equal(t, 196, cfg.Theme.Colors.PlayerTwoColor)
		assert.Equal(t, DefaultTheme.Colors.PlayerOneColor, cfg.Theme.Colors.PlayerOneColor)
		assert.Equal(t, DefaultConfig.Game.ComputerDelayMs, cfg.Game.ComputerDelayMs)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("TICTACTOE_COMPUTER_DELAY_MS", "50")
		t.Setenv("TICTACTOE_LOG_LEVEL", "debug")
		path := writeConfig(t, `{"game": {"computer_delay_ms": 900}}`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 50*time.Millisecond, cfg.ComputerDelay())
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("Environment applies without a file", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_FILE", "/tmp/ttt.log")

		cfg, err := Load("")

		require.NoError(t, err)
		path, err := cfg.LogPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ttt.log", path)
	})

	t.Run("Broken file is reported", func(t *testing.T) {
		path := writeConfig(t, `{"game": `)

		_, err := Load(path)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"Control character symbol", func(c *Config) { c.Theme.Symbols.PlayerOne = '\t' }},
		{"C1 control symbol", func(c *Config) { c.Theme.Symbols.PlayerTwo = 130 }},
		{"Same symbol for both players", func(c *Config) { c.Theme.Symbols.PlayerTwo = c.Theme.Symbols.PlayerOne }},
		{"Unknown mode", func(c *Config) { c.Game.DefaultMode = "online" }},
		{"Negative delay", func(c *Config) { c.Game.ComputerDelayMs = -1 }},
		{"Unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.modify(&cfg)

			err := cfg.Validate()

			var invalid *InvalidConfig
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), "Config error")
		})
	}

	t.Run("Defaults are valid", func(t *testing.T) {
		cfg := DefaultConfig
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.LogEnabled())
	})

	t.Run("Logging can be turned off", func(t *testing.T) {
		cfg := DefaultConfig
		cfg.Log.Level = LogOff
		assert.NoError(t, cfg.Validate())
		assert.False(t, cfg.LogEnabled())
	})
}

func TestSaveCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig
	cfg.Game.DefaultMode = "pvp"

	require.NoError(t, saveCfgFile(path, &cfg, 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

// useConfigHome points the XDG config dir at a fresh temp dir for one test.
func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func TestSaveGame(t *testing.T) {
	t.Run("Overrides of one run are not persisted", func(t *testing.T) {
		// Given a run started with --debug, --log-file and an env delay
		useConfigHome(t)
		t.Setenv("TICTACTOE_COMPUTER_DELAY_MS", "900")
		cfg, err := InitConfig()
		require.NoError(t, err)
		cfg.Log.Level = "debug"
		cfg.Log.File = "/tmp/x.log"

		// When the player starts a PvP game with a 500 ms delay
		require.NoError(t, SaveGame(types.PlayerVsPlayer, 500*time.Millisecond))

		// Then the next plain launch only remembers the game choice
		require.NoError(t, os.Unsetenv("TICTACTOE_COMPUTER_DELAY_MS"))
		next, err := InitConfig()
		require.NoError(t, err)
		assert.Equal(t, "info", next.Log.Level)
		assert.Empty(t, next.Log.File)
		assert.Equal(t, types.PlayerVsPlayer, next.Mode())
		assert.Equal(t, 500*time.Millisecond, next.ComputerDelay())
	})

	t.Run("Other file settings are kept", func(t *testing.T) {
		// Given a config file with a custom symbol and log level
		dir := useConfigHome(t)
		path := filepath.Join(dir, "tictactoe-local", "config.json")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(`{
  "theme": {"symbols": {"player_one": 9679}},
  "log": {"level": "warn"}
}`), 0o600))

		// When
		require.NoError(t, SaveGame(types.PlayerVsComputer, 0))

		// Then
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, '●', cfg.Theme.Symbols.PlayerOne)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, types.PlayerVsComputer, cfg.Mode())
		assert.Equal(t, time.Duration(0), cfg.ComputerDelay())
	})

	t.Run("Broken file is not overwritten", func(t *testing.T) {
		path := writeConfig(t, `{"game": `)

		err := saveGame(path, types.PlayerVsPlayer, 0)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"game": `, string(data))
	})
}
