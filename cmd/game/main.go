// cmd/game/main.go
package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-breakpoint-defense/internal/app"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/ledger"
	"go-breakpoint-defense/internal/logger"
	"go-breakpoint-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func openStore(path string) (ledger.Store, error) {
	if path == "" {
		return ledger.NewMemoryStore(), nil
	}
	return ledger.OpenSQLite(path)
}

func main() {
	log := logger.New("main")

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("failed to load settings: %v", err)
	}

	tuning := defs.DefaultTuning()
	if settings.TuningPath != "" {
		if tuning, err = defs.LoadTuning(settings.TuningPath); err != nil {
			log.Fatal("failed to load tuning: %v", err)
		}
		log.Info("tuning loaded from %s", settings.TuningPath)
	}

	store, err := openStore(settings.DBPath)
	if err != nil {
		log.Fatal("failed to open ledger: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close ledger: %v", err)
		}
	}()

	reporter := ledger.NewReporter(store, settings.PlayerID, config.LedgerTimeout*time.Second, logger.New("ledger"))
	defer reporter.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), config.LedgerTimeout*time.Second)
	best, err := store.BestWave(ctx, reporter.PlayerID())
	cancel()
	if err != nil {
		log.Warn("failed to read best wave: %v", err)
	}
	log.Info("player %s, best wave %d", reporter.PlayerID(), best)

	game := app.NewGame(app.Options{
		Tuning:           tuning,
		Reporter:         reporter,
		TargetingWorkers: settings.TargetingWorkers,
		Logger:           logger.New("game"),
	})

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	newGameState := func() state.State {
		return state.NewGameState(sm, game, face, logger.New("input"))
	}
	if settings.StartFromGame {
		sm.SetState(newGameState())
	} else {
		sm.SetState(state.NewMenuState(sm, newGameState, face, best))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Breakpoint Defense")
	if err := ebiten.RunGame(a); err != nil {
		log.Error("game loop stopped: %v", err)
	}
}
