package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/ilyakaznacheev/cleanenv"

	"tictactoe-local/types"
)

var (
	cfgFile = "tictactoe-local/config.json"
	logFile = "tictactoe-local/tictactoe.log"
)

// LogOff as the log level turns logging off.
const LogOff = "off"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor     int `json:"board"`
	GridColor      int `json:"grid"`
	PlayerOneColor int `json:"player_one"`
	PlayerTwoColor int `json:"player_two"`
	CursorColorBG  int `json:"cursor_bg"`
	BannerColor    int `json:"banner"`
}

type ConfigSymbols struct {
	PlayerOne rune `json:"player_one"`
	PlayerTwo rune `json:"player_two"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults offered on the mode selection screen.
type GameSettings struct {
	DefaultMode     string `json:"default_mode"`
	ComputerDelayMs int    `json:"computer_delay_ms" env:"TICTACTOE_COMPUTER_DELAY_MS"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs go to a file.
type LogConfig struct {
	Level string `json:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `json:"file" env:"TICTACTOE_LOG_FILE"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

// InitConfig loads the config file from the XDG config dirs, if any, on top of
// DefaultConfig and applies environment overrides.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return Load(absPath)
}

// Load reads the config at path over the defaults. An empty path only applies
// environment overrides.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &config); err != nil {
			return nil, &InvalidConfig{err.Error()}
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.PlayerOne, c.Theme.Symbols.PlayerTwo} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.PlayerOne == c.Theme.Symbols.PlayerTwo {
		return &InvalidConfig{"player symbols must differ"}
	}
	if _, err := types.ParseMode(c.Game.DefaultMode); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Game.ComputerDelayMs < 0 {
		return &InvalidConfig{"computer delay cannot be negative"}
	}
	if c.Log.Level == LogOff {
		return nil
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level: %s", err)}
	}
	return nil
}

// Mode returns the configured default mode. Validate guarantees it parses.
func (c *Config) Mode() types.Mode {
	mode, _ := types.ParseMode(c.Game.DefaultMode)
	return mode
}

func (c *Config) ComputerDelay() time.Duration {
	return time.Duration(c.Game.ComputerDelayMs) * time.Millisecond
}

// LogEnabled reports whether a log file is written at all.
func (c *Config) LogEnabled() bool {
	return c.Log.Level != LogOff
}

// LogPath returns the log file, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

// SaveGame stores the mode and delay last picked on the setup screen. Every other
// setting is written back as it is on disk, without flag or env overrides.
func SaveGame(mode types.Mode, delay time.Duration) error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveGame(absPath, mode, delay)
}

func saveGame(path string, mode types.Mode, delay time.Duration) error {
	stored := DefaultConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &stored); err != nil {
			return &InvalidConfig{err.Error()}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	stored.Game.DefaultMode = mode.Short()
	stored.Game.ComputerDelayMs = int(delay / time.Millisecond)
	return saveCfgFile(path, &stored, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
