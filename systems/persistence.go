package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Difficulty string `json:"difficulty"`
	Overlay    bool   `json:"overlay"`
	Fullscreen bool   `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "duel",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has been
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// SaveCurrentSettings stores the difficulty of m and the overlay flag.
func SaveCurrentSettings(m *Match, overlay bool) {
	_ = SaveSettings(&SavedSettings{
		Difficulty: m.Difficulty().String(),
		Overlay:    overlay,
		Fullscreen: ebiten.IsFullscreen(),
	})
}

// ApplySavedSettingsGlobal applies settings before the first match is built.
// An unreadable difficulty is ignored.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Difficulty != "" {
		if d, err := cfg.ParseDifficulty(saved.Difficulty); err == nil {
			cfg.StartDifficulty = d
		} else {
			log.Printf("Warning: ignoring saved difficulty: %v", err)
		}
	}
	cfg.Debug.Overlay = saved.Overlay
	ebiten.SetFullscreen(saved.Fullscreen)
}
