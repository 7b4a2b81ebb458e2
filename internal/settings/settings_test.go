package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewManager_SeedsDefaultsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	got := m.Get()
	if got.RiskReward != 3.0 || got.MinScore != 50 || got.LastPreset != "swing" {
		t.Fatalf("defaults wrong: %+v", got)
	}

	if err := m.SetRiskReward(2.0); err != nil {
		t.Fatalf("SetRiskReward: %v", err)
	}

	// A fresh manager on the same file sees the change.
	again, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager (reload): %v", err)
	}
	if again.Get().RiskReward != 2.0 {
		t.Fatalf("got %v after reload, want 2.0", again.Get().RiskReward)
	}
}

func TestManager_WatchlistAddRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.AddTicker(" gme "); err != nil {
		t.Fatalf("AddTicker: %v", err)
	}
	if err := m.AddTicker("GME"); err != nil {
		t.Fatalf("AddTicker (dup): %v", err)
	}
	if err := m.AddTicker("amc"); err != nil {
		t.Fatalf("AddTicker: %v", err)
	}

	got := m.Get().Watchlist
	if len(got) != 2 || got[0] != "GME" || got[1] != "AMC" {
		t.Fatalf("watchlist = %v, want [GME AMC]", got)
	}

	if err := m.RemoveTicker("gme"); err != nil {
		t.Fatalf("RemoveTicker: %v", err)
	}
	got = m.Get().Watchlist
	if len(got) != 1 || got[0] != "AMC" {
		t.Fatalf("watchlist = %v, want [AMC]", got)
	}

	if err := m.AddTicker("  "); err == nil {
		t.Fatal("expected an error for an empty symbol")
	}
}

func TestManager_GetReturnsACopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.AddTicker("GME"); err != nil {
		t.Fatalf("AddTicker: %v", err)
	}

	got := m.Get()
	got.Watchlist[0] = "HACKED"

	if m.Get().Watchlist[0] != "GME" {
		t.Fatal("mutating the returned copy leaked into the manager")
	}
}

func TestManager_RejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.SetRiskReward(0); err == nil {
		t.Fatal("expected an error for a zero ratio")
	}
	if err := m.SetMinScore(150); err == nil {
		t.Fatal("expected an error for a score above 100")
	}
}

func TestLoad_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
