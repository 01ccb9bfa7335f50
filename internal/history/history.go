// Package history provides a SQLite-backed log of query attempts.
//
// Each program run appends one row per attempted query: what was asked,
// where it was sent, how large the buffers were, how long the exchange took
// and whether it failed. The log is strictly observational; nothing in the
// query path reads it back.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded query attempt.
type Entry struct {
	QueriedAt     time.Time
	TransactionID uint16
	Name          string
	Server        string
	RequestSize   int
	ResponseSize  int
	Duration      time.Duration
	Error         string // empty on success
}

// Store wraps a SQLite database holding the query history.
type Store struct {
	conn *sql.DB
	mu   sync.Mutex
}

// Open opens or creates the history database at the given path, applying
// the schema if needed.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record appends one entry. A zero QueriedAt is stamped with the current time.
func (s *Store) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := e.QueriedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.conn.Exec(
		`INSERT INTO query_history
		   (queried_at, transaction_id, name, server, request_size, response_size, duration_us, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		at.UTC().Format(time.RFC3339Nano),
		int64(e.TransactionID),
		e.Name,
		e.Server,
		e.RequestSize,
		e.ResponseSize,
		e.Duration.Microseconds(),
		e.Error,
	)
	if err != nil {
		return fmt.Errorf("record query history: %w", err)
	}
	return nil
}

// Recent returns the most recent n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.Query(
		`SELECT queried_at, transaction_id, name, server, request_size, response_size, duration_us, error
		   FROM query_history
		  ORDER BY id DESC
		  LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("read query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e          Entry
			at         string
			txid       int64
			durationUS int64
		)
		if err := rows.Scan(&at, &txid, &e.Name, &e.Server, &e.RequestSize, &e.ResponseSize, &durationUS, &e.Error); err != nil {
			return nil, fmt.Errorf("scan query history row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse query history timestamp %q: %w", at, err)
		}
		e.QueriedAt = ts
		e.TransactionID = uint16(txid)
		e.Duration = time.Duration(durationUS) * time.Microsecond
		out = append(out, e)
	}
	return out, rows.Err()
}
