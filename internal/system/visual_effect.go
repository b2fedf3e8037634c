// internal/system/visual_effect.go
package system

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/utils"
)

// Clip — диапазон кадров спрайт-листа и длительность кадра.
type Clip struct {
	First, Last int
	Interval    float64
}

// DefaultClips: ходьба 8 кадров по 0.1 с, покой 5 кадров по 0.25 с.
func DefaultClips() map[component.AnimState]Clip {
	walk := Clip{First: 0, Last: 7, Interval: 0.1}
	return map[component.AnimState]Clip{
		component.AnimIdle:      {First: 0, Last: 4, Interval: 0.25},
		component.AnimWalkLeft:  walk,
		component.AnimWalkRight: walk,
		component.AnimWalkUp:    walk,
		component.AnimWalkDown:  walk,
	}
}

// VisualEffectSystem проигрывает анимации ходьбы врагов.
type VisualEffectSystem struct {
	ecs   *entity.ECS
	clips map[component.AnimState]Clip
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, clips map[component.AnimState]Clip) *VisualEffectSystem {
	if clips == nil {
		clips = DefaultClips()
	}
	return &VisualEffectSystem{ecs: ecs, clips: clips}
}

// Update двигает кадры. При смене состояния клип начинается с первого кадра.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Animations) {
		anim := s.ecs.Animations[id]
		clip, ok := s.clips[anim.State]
		if !ok {
			continue
		}
		if anim.Playing != anim.State || anim.Timer.Duration != clip.Interval {
			anim.Playing = anim.State
			anim.Frame = clip.First
			anim.Timer = utils.NewTimer(clip.Interval, utils.Repeating)
			continue
		}
		anim.Timer.Tick(deltaTime)
		if !anim.Timer.JustFinished() {
			continue
		}
		if anim.Frame < clip.First || anim.Frame >= clip.Last {
			anim.Frame = clip.First
		} else {
			anim.Frame++
		}
	}
}
