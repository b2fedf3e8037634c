package ledger

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-breakpoint-defense/internal/logger"
)

func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	best, err := s.BestWave(ctx, "p1")
	require.NoError(t, err)
	assert.Zero(t, best)

	for i, w := range []uint{1, 2, 3} {
		require.NoError(t, s.RecordWave(ctx, WaveRecord{
			ID: "r" + string(rune('a'+i)), PlayerID: "p1", Wave: w, RecordedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, s.RecordWave(ctx, WaveRecord{ID: "other", PlayerID: "p2", Wave: 9, RecordedAt: base}))

	hist, err := s.History(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.Equal(t, uint(3), hist[0].Wave, "newest first")
	assert.True(t, hist[0].RecordedAt.Equal(base.Add(2*time.Minute)))

	hist, err = s.History(ctx, "p1", 2)
	require.NoError(t, err)
	assert.Len(t, hist, 2)

	best, err = s.BestWave(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, uint(3), best)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.RecordWave(ctx, WaveRecord{ID: "late", PlayerID: "p1"}), ErrClosed)
	assert.NoError(t, s.Close())
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "ledger.db"))
	require.NoError(t, err)
	storeContract(t, s)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := OpenSQLite(MemoryDSN)
	require.NoError(t, err)
	storeContract(t, s)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestSQLiteStoreDuplicateID(t *testing.T) {
	s, err := OpenSQLite(MemoryDSN)
	require.NoError(t, err)
	defer s.Close()

	rec := WaveRecord{ID: "same", PlayerID: "p", Wave: 1, RecordedAt: time.Now()}
	require.NoError(t, s.RecordWave(context.Background(), rec))
	assert.Error(t, s.RecordWave(context.Background(), rec))
}

func TestReporterWritesInBackground(t *testing.T) {
	store := NewMemoryStore()
	r := NewReporter(store, "player-1", time.Second, nil)

	r.ReportWave(1)
	r.ReportWave(2)
	r.Wait()

	hist, err := store.History(context.Background(), "player-1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.NotEqual(t, hist[0].ID, hist[1].ID)
	assert.NotEmpty(t, hist[0].ID)
}

func TestReporterGeneratesPlayerID(t *testing.T) {
	r := NewReporter(NewMemoryStore(), "", time.Second, nil)
	assert.Len(t, r.PlayerID(), 36)
}

type failingRecorder struct{}

func (failingRecorder) RecordWave(context.Context, WaveRecord) error {
	return errors.New("disk full")
}

func TestReporterLogsErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(failingRecorder{}, "p", time.Second, logger.NewWithWriters("ledger", &out, &errOut))

	r.ReportWave(7)
	r.Wait()

	assert.Contains(t, errOut.String(), "failed to record wave 7")
	assert.Contains(t, errOut.String(), "disk full")
}
