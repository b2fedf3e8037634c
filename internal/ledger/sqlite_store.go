// internal/ledger/sqlite_store.go
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN открывает базу без файла.
const MemoryDSN = ":memory:"

// SQLiteStore implements Store on top of modernc.org/sqlite.
type SQLiteStore struct {
	db     *sql.DB
	closed atomic.Bool
}

// OpenSQLite opens (or creates) the ledger database and its schema.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// одно соединение: иначе у каждого своя :memory: база
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS wave_records (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			wave INTEGER NOT NULL,
			recorded_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_wave_records_player ON wave_records(player_id, recorded_at);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) RecordWave(ctx context.Context, rec WaveRecord) error {
	if s.closed.Load() {
		return ErrClosed
	}
	query := `INSERT INTO wave_records (id, player_id, wave, recorded_at) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, rec.ID, rec.PlayerID, int64(rec.Wave), rec.RecordedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record wave %d: %w", rec.Wave, err)
	}
	return nil
}

func (s *SQLiteStore) History(ctx context.Context, playerID string, limit int) ([]WaveRecord, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, player_id, wave, recorded_at FROM wave_records
		WHERE player_id = ? ORDER BY recorded_at DESC, wave DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []WaveRecord
	for rows.Next() {
		var (
			r    WaveRecord
			wave int64
			ms   int64
		)
		if err := rows.Scan(&r.ID, &r.PlayerID, &wave, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan wave record: %w", err)
		}
		r.Wave = uint(wave)
		r.RecordedAt = time.UnixMilli(ms).UTC()
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) BestWave(ctx context.Context, playerID string) (uint, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	var best sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(wave) FROM wave_records WHERE player_id = ?`, playerID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("failed to query best wave: %w", err)
	}
	return uint(best.Int64), nil
}

func (s *SQLiteStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
