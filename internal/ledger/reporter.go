// internal/ledger/reporter.go
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-breakpoint-defense/internal/logger"
)

// Reporter отправляет записи о волнах в фоне. ReportWave возвращается сразу;
// ошибки записи только логируются.
type Reporter struct {
	rec      Recorder
	playerID string
	timeout  time.Duration
	log      *logger.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewReporter создаёт Reporter. Пустой playerID заменяется случайным UUID.
func NewReporter(rec Recorder, playerID string, timeout time.Duration, log *logger.Logger) *Reporter {
	if playerID == "" {
		playerID = uuid.NewString()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Reporter{
		rec:      rec,
		playerID: playerID,
		timeout:  timeout,
		log:      log,
		now:      time.Now,
	}
}

// PlayerID returns the identity attached to every record.
func (r *Reporter) PlayerID() string { return r.playerID }

// ReportWave records a completed wave without blocking the caller.
func (r *Reporter) ReportWave(wave uint) {
	rec := WaveRecord{
		ID:         uuid.NewString(),
		PlayerID:   r.playerID,
		Wave:       wave,
		RecordedAt: r.now().UTC(),
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.rec.RecordWave(ctx, rec); err != nil {
			r.log.Error("failed to record wave %d for %s: %v", wave, r.playerID, err)
			return
		}
		r.log.Info("recorded wave %d for %s", wave, r.playerID)
	}()
}

// Wait blocks until every pending report has finished. Used on shutdown and in tests.
func (r *Reporter) Wait() {
	r.wg.Wait()
}
