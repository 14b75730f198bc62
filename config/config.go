package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termhex/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor   int `json:"board"`
	RedColor     int `json:"red"`
	BlueColor    int `json:"blue"`
	LineColor    int `json:"line"`
	CursorColor  int `json:"cursor"`
	HoverColorBG int `json:"hover_bg"`
	LastMoveBG   int `json:"last_move_bg"`
}

type ConfigSymbols struct {
	RedStone  rune `json:"red"`
	BlueStone rune `json:"blue"`
	EmptyCell rune `json:"empty"`
	Cursor    rune `json:"cursor"`
}

type Theme struct {
	DrawHoverBackground    bool          `json:"draw_hover_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameConfig holds game defaults applied to the new-game screen.
type GameConfig struct {
	DefaultBoardSize int `json:"default_board_size"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.RedStone, c.Theme.Symbols.BlueStone, c.Theme.Symbols.EmptyCell} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.DefaultBoardSize < 0 || c.Game.DefaultBoardSize > 17 {
		return &InvalidConfig{"default_board_size must be between 0 and 17"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
