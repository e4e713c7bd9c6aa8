// Package history persists cast results to sqlite.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/spell"
)

const schema = `
CREATE TABLE IF NOT EXISTS casts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	spell_id    TEXT    NOT NULL,
	spell_name  TEXT    NOT NULL,
	rarity      TEXT    NOT NULL,
	success     INTEGER NOT NULL,
	damage      INTEGER NOT NULL,
	accuracy    REAL    NOT NULL,
	score       INTEGER NOT NULL,
	samples     INTEGER NOT NULL,
	broken      INTEGER NOT NULL,
	elapsed_ms  INTEGER NOT NULL,
	timed_out   INTEGER NOT NULL,
	essence     TEXT    NOT NULL,
	resolved_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS casts_resolved ON casts(resolved_at);
`

// Record is one stored cast
type Record struct {
	ID             int64
	SpellID        string
	SpellName      string
	Rarity         string
	Success        bool
	Damage         int
	Accuracy       float64
	Score          int
	Samples        int
	SegmentsBroken int
	Elapsed        time.Duration
	TimedOut       bool
	Essence        string
	ResolvedAt     time.Time
}

// Summary aggregates all stored casts
type Summary struct {
	Casts        int
	Successes    int
	TotalDamage  int
	BestDamage   int
	MeanAccuracy float64
	Timeouts     int
}

// Store is a sqlite-backed cast log
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// CastResolved inserts a cast result
func (s *Store) CastResolved(r engine.CastResult) error {
	_, err := s.db.Exec(
		`INSERT INTO casts (spell_id, spell_name, rarity, success, damage, accuracy, score,
			samples, broken, elapsed_ms, timed_out, essence, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SpellID, r.SpellName, r.Rarity.String(), boolInt(r.Success), r.Damage, r.Accuracy, r.Score,
		r.Samples, r.SegmentsBroken, r.Elapsed.Milliseconds(), boolInt(r.TimedOut),
		formatEssence(r.Essence), r.ResolvedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting cast %s: %w", r.SpellID, err)
	}
	return nil
}

// Recent returns up to n casts, newest first
func (s *Store) Recent(n int) ([]Record, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT id, spell_id, spell_name, rarity, success, damage, accuracy, score,
			samples, broken, elapsed_ms, timed_out, essence, resolved_at
		FROM casts ORDER BY resolved_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying casts: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec               Record
			success, timedOut int
			elapsedMs, atMs   int64
		)
		if err := rows.Scan(&rec.ID, &rec.SpellID, &rec.SpellName, &rec.Rarity, &success,
			&rec.Damage, &rec.Accuracy, &rec.Score, &rec.Samples, &rec.SegmentsBroken,
			&elapsedMs, &timedOut, &rec.Essence, &atMs); err != nil {
			return nil, fmt.Errorf("scanning cast: %w", err)
		}
		rec.Success = success != 0
		rec.TimedOut = timedOut != 0
		rec.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		rec.ResolvedAt = time.UnixMilli(atMs)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Summary aggregates every stored cast
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	row := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(SUM(damage), 0),
			COALESCE(MAX(damage), 0), COALESCE(AVG(accuracy), 0), COALESCE(SUM(timed_out), 0)
		FROM casts`)
	if err := row.Scan(&sum.Casts, &sum.Successes, &sum.TotalDamage, &sum.BestDamage,
		&sum.MeanAccuracy, &sum.Timeouts); err != nil {
		return Summary{}, fmt.Errorf("summarizing casts: %w", err)
	}
	return sum, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// formatEssence renders costs as "fire:2,air:1"
func formatEssence(costs []spell.EssenceCost) string {
	parts := make([]string, len(costs))
	for i, c := range costs {
		parts[i] = fmt.Sprintf("%s:%d", c.Type, c.Amount)
	}
	return strings.Join(parts, ",")
}
