// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/system"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
)

var (
	ErrNotBuilding      = errors.New("towers can only be changed in the build phase")
	ErrInvalidSlot      = errors.New("invalid tower slot")
	ErrSlotOccupied     = errors.New("tower slot is occupied")
	ErrUnknownTower     = errors.New("unknown tower type")
	ErrNoTower          = errors.New("no such tower")
	ErrMaxLevel         = errors.New("tower is at max level")
	ErrInsufficientGold = errors.New("not enough gold")
)

// PlaceTower строит башню первого уровня в слоте.
func (g *Game) PlaceTower(slot int, towerType defs.TowerType) (types.EntityID, error) {
	if g.ECS.GameState.Phase != component.BuildState {
		return 0, ErrNotBuilding
	}
	if slot < 0 || slot >= len(g.Tuning.TowerSlots) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if _, occupied := g.TowerAt(slot); occupied {
		return 0, fmt.Errorf("%w: %d", ErrSlotOccupied, slot)
	}
	def, ok := g.Tuning.Tower(towerType)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTower, towerType)
	}
	cost := def.Cost(1, g.Tuning.Combat)
	if !g.EconomySystem.Spend(cost) {
		return 0, fmt.Errorf("%w: %s costs %d", ErrInsufficientGold, towerType, cost)
	}

	id := g.createTowerEntity(slot, def)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID: id, Type: towerType, Level: 1, Cost: cost,
	}})
	return id, nil
}

// UpgradeTower поднимает уровень башни на один.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.ECS.GameState.Phase != component.BuildState {
		return ErrNotBuilding
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoTower, id)
	}
	cost, err := g.UpgradeCost(id)
	if err != nil {
		return err
	}
	if !g.EconomySystem.Spend(cost) {
		return fmt.Errorf("%w: upgrade costs %d", ErrInsufficientGold, cost)
	}

	def, _ := g.Tuning.Tower(tower.Type)
	tower.Level++
	g.ECS.Combats[id] = system.NewTowerCombat(def, tower.Level, g.Tuning.Combat)
	if r, ok := g.ECS.Renderables[id]; ok {
		r.Radius = towerRadius(def, tower.Level)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: id, Type: tower.Type, Level: tower.Level, Cost: cost,
	}})
	return nil
}

// UpgradeCost returns the gold needed for the next level of a tower.
func (g *Game) UpgradeCost(id types.EntityID) (uint32, error) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNoTower, id)
	}
	if tower.Level >= g.Tuning.Combat.MaxLevel {
		return 0, ErrMaxLevel
	}
	def, ok := g.Tuning.Tower(tower.Type)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTower, tower.Type)
	}
	return def.Cost(tower.Level+1, g.Tuning.Combat), nil
}

// TowerAt возвращает башню в слоте.
func (g *Game) TowerAt(slot int) (types.EntityID, bool) {
	for id, tower := range g.ECS.Towers {
		if tower.Slot == slot {
			return id, true
		}
	}
	return 0, false
}

// SlotAt находит слот под точкой мира в пределах config.SlotRadius.
func (g *Game) SlotAt(p route.Vec) (int, bool) {
	for i, slot := range g.Tuning.TowerSlots {
		if slot.Dist(p) <= config.SlotRadius {
			return i, true
		}
	}
	return -1, false
}

func (g *Game) createTowerEntity(slot int, def defs.TowerDefinition) types.EntityID {
	pos := g.Tuning.TowerSlots[slot]
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.Towers[id] = &component.Tower{Type: def.Type, Level: 1, Slot: slot}
	g.ECS.Combats[id] = system.NewTowerCombat(def, 1, g.Tuning.Combat)
	g.ECS.Renderables[id] = &component.Renderable{
		Key:    string(def.Type),
		Color:  def.Visuals.Color,
		Radius: towerRadius(def, 1),
	}
	return id
}

func towerRadius(def defs.TowerDefinition, level int) float32 {
	return float32(config.TowerRadius*def.Visuals.RadiusFactor) + float32(level-1)*3
}
