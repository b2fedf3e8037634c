// internal/system/player_system.go
package system

import "go-breakpoint-defense/internal/event"

// SessionStats — счётчики текущей партии для HUD.
type SessionStats struct {
	Kills       int
	Breaches    int
	GoldEarned  uint32
	GoldSpent   uint32
	TowersBuilt int
	BestWave    uint
}

// PlayerSystem отвечает за статистику игрока, собираемую по событиям.
type PlayerSystem struct {
	stats SessionStats
}

func NewPlayerSystem(eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{}
	eventDispatcher.SubscribeAll(ps,
		event.EnemyKilled, event.EnemyBreached, event.WaveStarted, event.TowerPlaced, event.TowerUpgraded)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyKilledData:
		s.stats.Kills++
		s.stats.GoldEarned += data.Reward
	case event.EnemyBreachedData:
		s.stats.Breaches++
	case event.WaveData:
		if e.Type == event.WaveStarted && data.Number > s.stats.BestWave {
			s.stats.BestWave = data.Number
		}
	case event.TowerData:
		s.stats.GoldSpent += data.Cost
		if e.Type == event.TowerPlaced {
			s.stats.TowersBuilt++
		}
	}
}

func (s *PlayerSystem) Stats() SessionStats {
	return s.stats
}

// Reset обнуляет статистику при рестарте.
func (s *PlayerSystem) Reset() {
	s.stats = SessionStats{}
}
