package recorder

import "SignalScout/internal/model"

// NoopRecorder is a no-op implementation used when no database path is
// configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.Report) error { return nil }
func (n *NoopRecorder) RecordScan(_ *model.ScanResult) error { return nil }
func (n *NoopRecorder) RecentRuns(int) ([]RunSummary, error) { return nil, nil }
func (n *NoopRecorder) Close() error                         { return nil }
