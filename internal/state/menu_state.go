// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/ui"
)

// MenuState — стартовый экран с лучшим результатом игрока.
type MenuState struct {
	sm       *StateMachine
	next     func() State
	face     font.Face
	bestWave uint
	start    *ui.Button
}

// NewMenuState: next строит игровое состояние при старте.
func NewMenuState(sm *StateMachine, next func() State, face font.Face, bestWave uint) *MenuState {
	return &MenuState{
		sm:       sm,
		next:     next,
		face:     face,
		bestWave: bestWave,
		start:    ui.NewMenuButton(config.ScreenWidth/2, config.ScreenHeight/2, 220, 48, "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.start.Contains(x, y)
	}
	if start {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "BREAKPOINT DEFENSE"
	w := text.BoundString(m.face, title).Dx()
	text.Draw(screen, title, m.face, (config.ScreenWidth-w)/2, config.ScreenHeight/2-80, config.TextLightColor)

	if m.bestWave > 0 {
		best := fmt.Sprintf("best wave: %d", m.bestWave)
		w = text.BoundString(m.face, best).Dx()
		text.Draw(screen, best, m.face, (config.ScreenWidth-w)/2, config.ScreenHeight/2-50, config.TextLightColor)
	}

	x, y := ebiten.CursorPosition()
	m.start.Draw(screen, m.face, image.Pt(x, y).In(m.start.Rect))
}

func (m *MenuState) Exit() {}
