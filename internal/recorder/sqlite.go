package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"

	"SignalScout/internal/model"
)

// SQLiteRecorder persists history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so status reads don't block a running scan's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			kind       TEXT NOT NULL,
			scanned    INTEGER,
			skipped    INTEGER,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_runs_ts ON scan_runs(created_at)`,

		`CREATE TABLE IF NOT EXISTS scan_candidates (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			symbol     TEXT NOT NULL,
			price      REAL,
			change_pct REAL,
			rel_volume REAL,
			float_m    REAL,
			score      REAL,
			grade      TEXT,
			pillars    INTEGER,
			quality    TEXT,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_candidates_run ON scan_candidates(run_id)`,

		`CREATE TABLE IF NOT EXISTS analyses (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			symbol        TEXT NOT NULL,
			interval      TEXT,
			last_close    REAL,
			direction     TEXT,
			strength      TEXT,
			entry         REAL,
			stop          REAL,
			target        REAL,
			risk_reward   REAL,
			signal_score  REAL,
			signal_grade  TEXT,
			squeeze_score REAL,
			zone          TEXT,
			rsi           REAL,
			created_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := report.Recommendation
	_, err := r.db.Exec(`INSERT INTO analyses
		(run_id, symbol, interval, last_close, direction, strength,
		 entry, stop, target, risk_reward,
		 signal_score, signal_grade, squeeze_score, zone, rsi, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		uuid.NewString(), report.Symbol, string(report.Interval), report.LastClose,
		string(rec.Direction), string(rec.Strength),
		rec.Entry, rec.Stop, rec.Target, rec.RiskRewardRatio,
		report.Signal.Total, report.Signal.Grade, report.Squeeze.Total,
		string(report.Bands.Zone), report.Oscillator.RSI,
		time.Now().Unix(),
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(result *model.ScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	runID := uuid.NewString()
	now := time.Now().Unix()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO scan_runs
		(run_id, kind, scanned, skipped, created_at) VALUES (?,?,?,?,?)`,
		runID, string(result.Kind), result.Scanned, result.Skipped, now); err != nil {
		return err
	}

	for _, c := range result.Candidates {
		if _, err := tx.Exec(`INSERT INTO scan_candidates
			(run_id, symbol, price, change_pct, rel_volume, float_m,
			 score, grade, pillars, quality, created_at)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			runID, c.Symbol, c.Price, c.ChangePct, c.RelVolume, c.FloatM,
			c.Score.Total, c.Score.Grade, c.Pillars, string(c.Quality), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(`SELECT r.run_id, r.kind, r.scanned, r.created_at,
			COUNT(c.id), COALESCE(MAX(c.score), 0)
		FROM scan_runs r
		LEFT JOIN scan_candidates c ON c.run_id = r.run_id
		GROUP BY r.id
		ORDER BY r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		var ts int64
		if err := rows.Scan(&s.RunID, &s.Kind, &s.Scanned, &ts, &s.Candidates, &s.TopScore); err != nil {
			return nil, err
		}
		s.CreatedAt = time.Unix(ts, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
