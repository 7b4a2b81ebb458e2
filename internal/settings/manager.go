package settings

import (
	"strings"
	"sync"

	"SignalScout/internal/model"
)

// Manager guards the user settings with a mutex and persists every
// change. One Manager per settings file.
type Manager struct {
	mu    sync.Mutex
	state *Settings
	path  string
}

// NewManager loads settings from path, seeding defaults on first run.
func NewManager(path string) (*Manager, error) {
	state, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Initialize if fresh state
	if state.RiskReward == 0 {
		state.RiskReward = 3.0
		state.MinScore = 50
		state.LastPreset = "swing"
	}

	m := &Manager{state: state, path: path}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := *m.state
	out.Watchlist = append([]string(nil), m.state.Watchlist...)
	return out
}

// SetRiskReward stores the default risk:reward ratio.
func (m *Manager) SetRiskReward(rr float64) error {
	if rr <= 0 {
		return &model.ConfigurationError{Field: "risk_reward", Reason: "must be positive"}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.RiskReward = rr
	return m.save()
}

// SetMinScore stores the default qualifying score.
func (m *Manager) SetMinScore(score float64) error {
	if score < 0 || score > 100 {
		return &model.ConfigurationError{Field: "min_score", Reason: "must be between 0 and 100"}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.MinScore = score
	return m.save()
}

// SetSchedule toggles the scheduled scan.
func (m *Manager) SetSchedule(on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.ScheduleOn = on
	return m.save()
}

// SetPreset remembers the last used timeframe preset.
func (m *Manager) SetPreset(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.LastPreset = name
	return m.save()
}

// AddTicker appends a symbol to the watchlist if it is not there yet.
func (m *Manager) AddTicker(symbol string) error {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return &model.ConfigurationError{Field: "watchlist", Reason: "empty symbol"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.state.Watchlist {
		if t == sym {
			return nil
		}
	}
	m.state.Watchlist = append(m.state.Watchlist, sym)
	return m.save()
}

// RemoveTicker drops a symbol from the watchlist.
func (m *Manager) RemoveTicker(symbol string) error {
	sym := strings.ToUpper(strings.TrimSpace(symbol))

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.state.Watchlist[:0]
	for _, t := range m.state.Watchlist {
		if t != sym {
			kept = append(kept, t)
		}
	}
	m.state.Watchlist = kept
	return m.save()
}

func (m *Manager) save() error {
	return Save(m.path, m.state)
}
