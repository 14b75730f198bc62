package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawHoverBackground:    true,
		DrawLastMoveBackground: true,
		Colors: ConfigColors{
			BoardColor:   250,
			RedColor:     160,
			BlueColor:    27,
			LineColor:    240,
			CursorColor:  2,
			HoverColorBG: 4,
			LastMoveBG:   2,
		},
		Symbols: ConfigSymbols{
			RedStone:  '⬢',
			BlueStone: '⬢',
			EmptyCell: '⬡',
			Cursor:    '⬡',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultBoardSize: 11,
		},
	}
}
