package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"SignalScout/internal/model"
)

// WriteReport saves one analysis report to path. The format follows
// the file extension, .json or .csv.
func WriteReport(path string, rep *model.Report) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSON(path, rep)
	case ".csv":
		return writeCSV(path, func(w *csv.Writer) error { return reportRows(w, rep) })
	default:
		return fmt.Errorf("export: unsupported extension %q, want .json or .csv", filepath.Ext(path))
	}
}

// WriteScan saves a scan result to path. The format follows the file
// extension, .json or .csv.
func WriteScan(path string, res *model.ScanResult) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSON(path, res)
	case ".csv":
		return writeCSV(path, func(w *csv.Writer) error { return scanRows(w, res) })
	default:
		return fmt.Errorf("export: unsupported extension %q, want .json or .csv", filepath.Ext(path))
	}
}

func reportRows(w *csv.Writer, rep *model.Report) error {
	header := []string{
		"symbol", "interval", "last_close", "zone",
		"signal_score", "signal_grade", "squeeze_score", "rsi",
		"direction", "strength", "entry", "stop", "target", "risk_reward",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	rec := rep.Recommendation
	return w.Write([]string{
		rep.Symbol,
		string(rep.Interval),
		ftoa(rep.LastClose),
		string(rep.Bands.Zone),
		ftoa(rep.Signal.Total),
		rep.Signal.Grade,
		ftoa(rep.Squeeze.Total),
		ftoa(rep.Oscillator.RSI),
		string(rec.Direction),
		string(rec.Strength),
		ftoa(rec.Entry),
		ftoa(rec.Stop),
		ftoa(rec.Target),
		ftoa(rec.RiskRewardRatio),
	})
}

func scanRows(w *csv.Writer, res *model.ScanResult) error {
	header := []string{
		"rank", "symbol", "price", "change_pct", "rel_volume", "float_m",
		"score", "grade", "pillars", "quality", "warnings",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, c := range res.Candidates {
		row := []string{
			strconv.Itoa(i + 1),
			c.Symbol,
			ftoa(c.Price),
			ftoa(c.ChangePct),
			ftoa(c.RelVolume),
			ftoa(c.FloatM),
			ftoa(c.Score.Total),
			c.Score.Grade,
			strconv.Itoa(c.Pillars),
			string(c.Quality),
			strings.Join(c.Warnings, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func writeCSV(path string, write func(*csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
