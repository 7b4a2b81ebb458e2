package recorder

import (
	"time"

	"SignalScout/internal/model"
)

// RunSummary is one row of scan history.
type RunSummary struct {
	RunID      string
	Kind       string
	Scanned    int
	Candidates int
	TopScore   float64
	CreatedAt  time.Time
}

// Recorder persists analysis and scan history.
type Recorder interface {
	RecordAnalysis(report *model.Report) error
	RecordScan(result *model.ScanResult) error
	RecentRuns(limit int) ([]RunSummary, error)
	Close() error
}
