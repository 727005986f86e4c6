package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		Colors: ConfigColors{
			BoardColor:     236,
			GridColor:      252,
			PlayerOneColor: 32,
			PlayerTwoColor: 160,
			CursorColorBG:  60,
			BannerColor:    255,
		},
		Symbols: ConfigSymbols{
			PlayerOne: 'O',
			PlayerTwo: 'X',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			DefaultMode:     "pvc",
			ComputerDelayMs: 300,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
