// Package experiment - SQLite persistence for sweep results.
//
// The store keeps two tables: one row per evolutionary run (with the derived
// seed, so any run can be replayed bit-exactly) and one row per aggregated
// summary. Backed by the pure-Go modernc.org/sqlite driver via database/sql;
// no cgo involved.
package experiment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// ErrStoreClosed is returned by store operations before Init or after Close.
var ErrStoreClosed = errors.New("experiment: store is not open")

// Store persists sweep runs and summaries in a SQLite file.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewStore prepares a store for the given SQLite file path; call Init before
// first use.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init opens the database, verifies connectivity and creates the schema.
// Calling Init on an already-open store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return fmt.Errorf("%w: empty path", ErrStoreClosed)
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err = createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// createTables builds the schema; idempotent.
func createTables(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			experiment  TEXT NOT NULL,
			instance    TEXT NOT NULL,
			axis        TEXT NOT NULL,
			value       TEXT NOT NULL,
			run         INTEGER NOT NULL,
			seed        INTEGER NOT NULL,
			best        REAL NOT NULL,
			tour        TEXT NOT NULL,
			created_at  TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS summaries (
			id          TEXT PRIMARY KEY,
			experiment  TEXT NOT NULL,
			axis        TEXT NOT NULL,
			value       TEXT NOT NULL,
			runs        INTEGER NOT NULL,
			mean        REAL NOT NULL,
			median      REAL NOT NULL,
			stddev      REAL NOT NULL,
			best        REAL NOT NULL,
			created_at  TEXT NOT NULL
		);
	`
	_, err := db.ExecContext(ctx, schema)

	return err
}

// getDB returns the open handle or ErrStoreClosed.
func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}

	return s.db, nil
}

// SaveRun inserts one run row. The result's RunID is used as the primary key
// (a fresh uuid is assigned when empty).
func (s *Store) SaveRun(ctx context.Context, experiment, instanceName string, res Result) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	id := res.RunID
	if id == "" {
		id = uuid.NewString()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, experiment, instance, axis, value, run, seed, best, tour, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, experiment, instanceName, res.Axis, res.Value, res.Run, res.Seed,
		res.BestFitness, encodeTour(res.Tour), time.Now().UTC().Format(time.RFC3339))

	return err
}

// SaveSummary inserts one summary row.
func (s *Store) SaveSummary(ctx context.Context, experiment string, sum Summary) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO summaries (id, experiment, axis, value, runs, mean, median, stddev, best, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), experiment, sum.Axis, sum.Value, sum.Runs,
		sum.Mean, sum.Median, sum.StdDev, sum.Best, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Runs returns every stored run of one experiment in insertion order.
func (s *Store) Runs(ctx context.Context, experiment string) ([]Result, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, axis, value, run, seed, best, tour
		FROM runs WHERE experiment = ? ORDER BY rowid
	`, experiment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out []Result
		res Result
		enc string
	)
	for rows.Next() {
		if err = rows.Scan(&res.RunID, &res.Axis, &res.Value, &res.Run,
			&res.Seed, &res.BestFitness, &enc); err != nil {
			return nil, err
		}
		if res.Tour, err = decodeTour(enc); err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, rows.Err()
}

// Summaries returns every stored summary of one experiment in insertion order.
func (s *Store) Summaries(ctx context.Context, experiment string) ([]Summary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT axis, value, runs, mean, median, stddev, best
		FROM summaries WHERE experiment = ? ORDER BY rowid
	`, experiment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out []Summary
		sum Summary
	)
	for rows.Next() {
		if err = rows.Scan(&sum.Axis, &sum.Value, &sum.Runs,
			&sum.Mean, &sum.Median, &sum.StdDev, &sum.Best); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}

	return out, rows.Err()
}

// Close releases the database handle. Safe to call twice.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// encodeTour renders a tour as space-separated city indices.
func encodeTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, c := range tour {
		parts[i] = strconv.Itoa(c)
	}

	return strings.Join(parts, " ")
}

// decodeTour parses the encodeTour representation.
func decodeTour(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Fields(s)
	tour := make([]int, len(fields))

	var err error
	for i, f := range fields {
		if tour[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("experiment: corrupt tour column: %w", err)
		}
	}

	return tour, nil
}
