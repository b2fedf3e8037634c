// internal/state/game_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-breakpoint-defense/internal/app"
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/logger"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/internal/ui"
	"go-breakpoint-defense/pkg/render"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры: ввод игрока и отрисовка поверх app.Game.
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	log             *logger.Logger
	face            font.Face
	renderer        *render.Renderer
	indicator       *ui.StateIndicator
	infoPanel       *ui.InfoPanel
	healthIndicator *ui.PlayerHealthIndicator
	waveIndicator   *ui.WaveIndicator
	goldIndicator   *ui.GoldIndicator
	pauseButton     *ui.PauseButton
	speedButton     *ui.SpeedButton
	towerButtons    []*ui.Button
	selectedType    defs.TowerType
	lastPhase       component.Phase
	lastClickTime   time.Time
	message         string
	messageUntil    time.Time
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face, log *logger.Logger) *GameState {
	if log == nil {
		log = logger.Discard()
	}
	palette := render.Palette{
		Background:  config.BackgroundColor,
		Path:        config.PathColor,
		Slot:        config.SlotColor,
		Projectile:  config.ProjectileColor,
		Impact:      config.ImpactColor,
		HealthBar:   config.HealthBarColor,
		Stroke:      config.IndicatorStroke,
		StrokeWidth: float32(config.StrokeWidth),
	}
	vp := render.Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight}

	gs := &GameState{
		sm:              sm,
		game:            game,
		log:             log,
		face:            face,
		renderer:        render.NewRenderer(game.Route, game.Tuning.TowerSlots, vp, palette, face),
		indicator:       ui.NewStateIndicator(config.ScreenWidth-config.IndicatorOffsetX, config.IndicatorOffsetX, config.IndicatorRadius, config.IndicatorStroke),
		infoPanel:       ui.NewInfoPanel(face, config.TextLightColor, config.ScreenWidth, config.ScreenHeight),
		healthIndicator: ui.NewPlayerHealthIndicator(20, 40),
		waveIndicator:   ui.NewWaveIndicator(config.ScreenWidth/2, 30, config.TextLightColor),
		goldIndicator:   ui.NewGoldIndicator(20, 170, config.TextLightColor),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-config.IndicatorOffsetX*2-10, config.IndicatorOffsetX, config.ButtonSize,
			config.IndicatorStroke, config.BuildStateColor),
		speedButton: ui.NewSpeedButton(config.ScreenWidth-config.IndicatorOffsetX*3-20, config.IndicatorOffsetX, config.ButtonSize,
			map[int]color.Color{1: config.IndicatorStroke, 2: config.ProjectileColor, 4: config.ImpactColor}),
		lastPhase: game.ECS.GameState.Phase,
	}

	for i, def := range game.Tuning.Towers {
		x := 20 + i*170
		btn := ui.NewButton(image.Rect(x, config.ScreenHeight-60, x+160, config.ScreenHeight-20),
			fmt.Sprintf("%d %s (%d)", i+1, def.Name, def.Cost(1, game.Tuning.Combat)))
		btn.BorderColor = def.Visuals.Color
		gs.towerButtons = append(gs.towerButtons, btn)
	}
	if len(game.Tuning.Towers) > 0 {
		gs.selectedType = game.Tuning.Towers[0].Type
	}
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.togglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.toggleSpeed()
	}
	for i, key := range towerKeys {
		if i < len(g.game.Tuning.Towers) && inpututil.IsKeyJustPressed(key) {
			g.selectedType = g.game.Tuning.Towers[i].Type
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.upgradeSelected()
	}
	if g.game.ECS.GameState.Phase == component.GameOverState && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
		g.infoPanel.Hide()
		g.log.Info("game restarted")
	}

	g.game.Update(deltaTime)

	if phase := g.game.ECS.GameState.Phase; phase != g.lastPhase {
		g.lastPhase = phase
		g.indicator.Pulse()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
			return
		}
		g.lastClickTime = time.Now()
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleGameClick(x, y)
		}
	}
}

// handleUIClick возвращает true, если клик пришёлся на элемент интерфейса.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.togglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	case g.speedButton.IsClicked(x, y):
		g.toggleSpeed()
		return true
	}
	if g.infoPanel.Contains(x, y) {
		if g.infoPanel.UpgradeButton.Contains(x, y) {
			g.upgradeSelected()
		}
		return true
	}
	for i, btn := range g.towerButtons {
		if btn.Contains(x, y) {
			g.selectedType = g.game.Tuning.Towers[i].Type
			return true
		}
	}
	return false
}

func (g *GameState) handleGameClick(x, y int) {
	p := g.renderer.ToWorld(x, y)

	if slot, ok := g.game.SlotAt(p); ok {
		if id, occupied := g.game.TowerAt(slot); occupied {
			g.infoPanel.SetTarget(id)
			return
		}
		id, err := g.game.PlaceTower(slot, g.selectedType)
		if err != nil {
			g.flash(err)
			return
		}
		g.infoPanel.SetTarget(id)
		return
	}

	if id, ok := g.findEnemyAt(x, y); ok {
		g.infoPanel.SetTarget(id)
		return
	}
	g.infoPanel.Hide()
}

// findEnemyAt ищет врага под курсором.
func (g *GameState) findEnemyAt(x, y int) (types.EntityID, bool) {
	p := g.renderer.ToWorld(x, y)
	for _, id := range entity.SortedIDs(g.game.ECS.Enemies) {
		pos, ok := g.game.ECS.Positions[id]
		if !ok {
			continue
		}
		if pos.Vec().Dist(p) <= config.EnemyRadius*1.5 {
			return id, true
		}
	}
	return 0, false
}

func (g *GameState) upgradeSelected() {
	id := g.infoPanel.TargetEntity
	if _, ok := g.game.ECS.Towers[id]; !ok {
		return
	}
	if err := g.game.UpgradeTower(id); err != nil {
		g.flash(err)
	}
}

func (g *GameState) togglePause() {
	g.game.HandlePauseClick()
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) toggleSpeed() {
	g.game.HandleSpeedClick()
	g.speedButton.Clicked()
}

func (g *GameState) flash(err error) {
	g.message = err.Error()
	g.messageUntil = time.Now().Add(config.MessageDuration * time.Second)
	g.log.Warn("action rejected: %v", err)
}

func (g *GameState) upgradeInfo() ui.Upgrade {
	cost, err := g.game.UpgradeCost(g.infoPanel.TargetEntity)
	if err != nil {
		return ui.Upgrade{}
	}
	return ui.Upgrade{Cost: cost, Available: g.game.ECS.GameState.Phase == component.BuildState}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	selectedSlot := -1
	if t, ok := g.game.ECS.Towers[g.infoPanel.TargetEntity]; ok {
		selectedSlot = t.Slot
	}
	g.renderer.Draw(screen, g.game.ECS, selectedSlot)

	var stateColor color.Color
	switch snap.Phase {
	case component.BuildState:
		stateColor = config.BuildStateColor
	case component.WaveState:
		stateColor = config.WaveStateColor
	default:
		stateColor = config.GameOverColor
	}
	g.indicator.Draw(screen, stateColor)
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen, snap.Speed)

	g.healthIndicator.Draw(screen, g.face, int(snap.Lives), int(g.game.Tuning.Economy.MaxLives))
	g.waveIndicator.Draw(screen, g.face, int(snap.Wave)+1)
	g.goldIndicator.Draw(screen, g.face, snap.Gold, snap.NextWaveIn)
	text.Draw(screen, fmt.Sprintf("%s  %d/%d  kills %d", snap.Phase, snap.SpawnedInWave, snap.Quota, snap.Stats.Kills),
		g.face, config.ScreenWidth/2-80, 50, config.TextLightColor)

	cx, cy := ebiten.CursorPosition()
	cursor := image.Pt(cx, cy)
	for i, btn := range g.towerButtons {
		btn.Draw(screen, g.face, cursor.In(btn.Rect) || g.game.Tuning.Towers[i].Type == g.selectedType)
	}
	g.infoPanel.Draw(screen, g.game.ECS, g.game.Tuning, g.upgradeInfo(), cursor)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		w := text.BoundString(g.face, g.message).Dx()
		text.Draw(screen, g.message, g.face, (config.ScreenWidth-w)/2, config.ScreenHeight-80, config.WaveStateColor)
	}

	if snap.Phase == component.GameOverState {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("waves survived: %d  kills: %d", snap.Wave, snap.Stats.Kills),
			"press R to restart",
		}
		for i, line := range lines {
			w := text.BoundString(g.face, line).Dx()
			text.Draw(screen, line, g.face, (config.ScreenWidth-w)/2, config.ScreenHeight/2-20+i*22, color.White)
		}
	}
}

func (g *GameState) Exit() {}
