package cli

import (
	"testing"

	"SignalScout/internal/model"
)

func TestValidateTicker(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"AAPL", false},
		{"aapl", false},
		{" tsla ", false},
		{"BTC-USD", false},
		{"BRK.B", false},
		{"^GSPC", false},
		{"", true},
		{"   ", true},
		{"TOOLONGTICKER", true},
		{"AA PL", true},
		{"AAPL;DROP", true},
	}
	for _, tt := range tests {
		err := validateTicker(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateTicker(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
	}
}

func TestPresetByName(t *testing.T) {
	p := presetByName("scalp")
	if p.Primary != model.Interval15Min || len(p.Timeframes) != 3 {
		t.Errorf("scalp preset = %+v", p)
	}
	if p.Timeframes[0] != model.Interval1Min {
		t.Errorf("scalp first timeframe = %s, want 1m", p.Timeframes[0])
	}

	// Unknown names fall back to swing.
	p = presetByName("nonsense")
	if p.Name != "swing" || p.Primary != model.Interval1Day {
		t.Errorf("fallback preset = %+v, want swing", p)
	}
}

func TestPresetsParse(t *testing.T) {
	for _, p := range presets {
		if _, err := model.ParseInterval(string(p.Primary)); err != nil {
			t.Errorf("preset %s primary: %v", p.Name, err)
		}
		for _, tf := range p.Timeframes {
			if _, err := model.ParseInterval(string(tf)); err != nil {
				t.Errorf("preset %s timeframe %s: %v", p.Name, tf, err)
			}
		}
	}
}

func TestJoinIntervals(t *testing.T) {
	got := joinIntervals([]model.Interval{model.Interval1Hour, model.Interval4Hour, model.Interval1Day})
	if got != "1h/4h/1d" {
		t.Errorf("joinIntervals = %q", got)
	}
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()
	want := map[string]bool{
		"analyze": false, "scan": false, "squeeze": false,
		"watch": false, "history": false, "version": false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %s", name)
		}
	}
}
