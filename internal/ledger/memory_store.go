// internal/ledger/memory_store.go
package ledger

import (
	"cmp"
	"context"
	"slices"
	"sync"
)

// MemoryStore — Store без диска, используется при пустом DB_PATH и в тестах.
type MemoryStore struct {
	mu      sync.Mutex
	records []WaveRecord
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) RecordWave(ctx context.Context, rec WaveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *MemoryStore) History(ctx context.Context, playerID string, limit int) ([]WaveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	var out []WaveRecord
	for _, r := range s.records {
		if r.PlayerID == playerID {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b WaveRecord) int {
		if c := b.RecordedAt.Compare(a.RecordedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.Wave, a.Wave)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) BestWave(ctx context.Context, playerID string) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	var best uint
	for _, r := range s.records {
		if r.PlayerID == playerID && r.Wave > best {
			best = r.Wave
		}
	}
	return best, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
