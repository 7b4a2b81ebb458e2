package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings are the persisted user preferences.
type Settings struct {
	RiskReward float64   `json:"risk_reward"`
	MinScore   float64   `json:"min_score"`
	ScheduleOn bool      `json:"schedule_on"`
	LastPreset string    `json:"last_preset"`
	Watchlist  []string  `json:"watchlist"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Load reads settings from a JSON file. A missing file yields zero
// settings so first runs start clean.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// Save writes settings atomically: a temp file in the target directory
// is renamed over the real file, so a crash never leaves it half written.
func Save(path string, s *Settings) error {
	s.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
