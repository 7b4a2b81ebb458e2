package model

// ScanKind labels which scanning policy produced a result set.
type ScanKind string

const (
	ScanMomentum ScanKind = "MOMENTUM"
	ScanSqueeze  ScanKind = "SQUEEZE"
)

// Candidate is one symbol that survived a scan, scored and ready for
// ranking. Pillars is set by momentum scans, Quality by squeeze scans.
type Candidate struct {
	Symbol    string
	Price     float64
	ChangePct float64
	RelVolume float64
	FloatM    float64
	Score     ScoreBreakdown
	Pillars   int
	Quality   SetupQuality
	Warnings  []string
}

// ScanResult is a ranked candidate list from one scan pass.
type ScanResult struct {
	Kind       ScanKind
	Candidates []Candidate
	Scanned    int
	Skipped    int
}
