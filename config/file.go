package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML override file. Zero or missing fields keep
// the built-in defaults.
type FileConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Difficulty string `yaml:"difficulty"`
	Seed       int64  `yaml:"seed"`
	TickRate   int    `yaml:"tick_rate"`
	Countdown  int    `yaml:"countdown"`
	Spawn      struct {
		Player *SpawnFile `yaml:"player"`
		Bot    *SpawnFile `yaml:"bot"`
	} `yaml:"spawn"`
	Debug struct {
		SkipMenu bool `yaml:"skip_menu"`
		Overlay  bool `yaml:"overlay"`
	} `yaml:"debug"`
}

// SpawnFile overrides a spawn point position
type SpawnFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadFile reads a YAML override file and applies it to the globals.
func LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return Apply(&fc)
}

// Apply copies the non-zero fields of fc onto the global configuration.
func Apply(fc *FileConfig) error {
	if fc.Width > 0 {
		C.Width = fc.Width
	}
	if fc.Height > 0 {
		C.Height = fc.Height
	}
	if fc.Difficulty != "" {
		d, err := ParseDifficulty(fc.Difficulty)
		if err != nil {
			return err
		}
		StartDifficulty = d
	}
	if fc.Seed != 0 {
		Bot.Seed = fc.Seed
	}
	if fc.TickRate > 0 {
		Match.TickRate = fc.TickRate
	}
	if fc.Countdown > 0 {
		Match.Countdown = fc.Countdown
	}
	if p := fc.Spawn.Player; p != nil {
		Spawn.Player.X, Spawn.Player.Y = p.X, p.Y
	}
	if b := fc.Spawn.Bot; b != nil {
		Spawn.Bot.X, Spawn.Bot.Y = b.X, b.Y
	}
	Debug.SkipMenu = Debug.SkipMenu || fc.Debug.SkipMenu
	Debug.Overlay = Debug.Overlay || fc.Debug.Overlay
	return nil
}
