// Package ledger хранит журнал пройденных волн. Симуляция пишет в него через
// Reporter и никогда не ждёт результата.
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by stores after Close.
var ErrClosed = errors.New("ledger: store is closed")

// WaveRecord — одна запись о завершённой волне.
type WaveRecord struct {
	ID         string
	PlayerID   string
	Wave       uint
	RecordedAt time.Time
}

// Recorder принимает записи о волнах.
type Recorder interface {
	RecordWave(ctx context.Context, rec WaveRecord) error
}

// Store — Recorder с чтением истории.
type Store interface {
	Recorder
	// History returns the player's records, newest first. limit <= 0 means all.
	History(ctx context.Context, playerID string, limit int) ([]WaveRecord, error)
	// BestWave returns the highest wave the player has completed, 0 if none.
	BestWave(ctx context.Context, playerID string) (uint, error)
	Close() error
}
