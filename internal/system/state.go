// internal/system/state.go
package system

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/interfaces"
	"go-breakpoint-defense/internal/logger"
)

// StateSystem — машина фаз: строительство, атака, конец игры.
// Конец игры терминален, выйти из него можно только через Reset.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
	log             *logger.Logger
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, log *logger.Logger) *StateSystem {
	if log == nil {
		log = logger.Discard()
	}
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.SubscribeAll(ss, event.WaveCleared, event.WaveStarted, event.EnemyBreached)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		s.SwitchToBuildState()
	case event.WaveStarted:
		s.SwitchToWaveState()
	case event.EnemyBreached:
		if data, ok := e.Data.(event.EnemyBreachedData); ok && data.LivesLeft == 0 {
			s.SwitchToGameOverState()
		}
	}
}

// SwitchToBuildState переводит игру в строительство и убирает оставшиеся снаряды.
func (s *StateSystem) SwitchToBuildState() {
	if !s.transition(component.BuildState) {
		return
	}
	s.gameContext.ClearProjectiles()
}

func (s *StateSystem) SwitchToWaveState() {
	s.transition(component.WaveState)
}

// SwitchToGameOverState останавливает игру и убирает всех врагов и снаряды.
func (s *StateSystem) SwitchToGameOverState() {
	if !s.transition(component.GameOverState) {
		return
	}
	s.gameContext.ClearEnemies()
	s.gameContext.ClearProjectiles()
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Number: s.ecs.Wave.Number}})
}

// Reset возвращает фазу строительства, в том числе из конца игры.
func (s *StateSystem) Reset() {
	s.ecs.GameState.Phase = component.BuildState
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}

func (s *StateSystem) transition(to component.Phase) bool {
	from := s.ecs.GameState.Phase
	if from == to || from == component.GameOverState {
		return false
	}
	s.ecs.GameState.Phase = to
	s.log.Info("phase %s -> %s", from, to)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseChangedData{From: from, To: to}})
	return true
}
