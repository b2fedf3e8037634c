// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/types"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 220
)

var (
	panelBgColor     = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// Upgrade описывает, можно ли улучшить выбранную башню и за сколько.
type Upgrade struct {
	Cost      uint32
	Available bool // false: максимальный уровень или не фаза строительства
}

// InfoPanel выезжает снизу и показывает выбранную башню или врага.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	UpgradeButton *Button
	fontFace      font.Face
	textColor     color.RGBA
	screenW       int
	screenH       int
	currentY      float64
	targetY       float64
}

func NewInfoPanel(face font.Face, textColor color.RGBA, screenW, screenH int) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		textColor:     textColor,
		screenW:       screenW,
		screenH:       screenH,
		currentY:      float64(screenH),
		targetY:       float64(screenH),
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetEntity = id
	p.IsVisible = true
	p.targetY = float64(p.screenH - panelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.screenH)
}

// Contains — попадает ли точка в видимую часть панели.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY)
}

// Update анимирует выезд панели.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= float64(p.screenH) {
		p.IsVisible = false
		p.TargetEntity = 0
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS, tuning *defs.Tuning, upgrade Upgrade, cursor image.Point) {
	if !p.IsVisible {
		return
	}
	rect := image.Rect(panelMargin, int(p.currentY)+panelMargin, p.screenW-panelMargin, int(p.currentY)+panelHeight-panelMargin)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, panelBgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, panelBorderColor, true)

	startX, startY := rect.Min.X+15, rect.Min.Y+22
	if tower, ok := ecs.Towers[p.TargetEntity]; ok {
		def, _ := tuning.Tower(tower.Type)
		p.drawTowerInfo(screen, def, tower.Level, tuning.Combat, startX, startY)

		btn := p.UpgradeButton
		btn.Rect = image.Rect(rect.Max.X-190, rect.Max.Y-55, rect.Max.X-20, rect.Max.Y-15)
		btn.Disabled = !upgrade.Available
		btn.Text = "Upgrade (max)"
		if upgrade.Available {
			btn.Text = fmt.Sprintf("Upgrade (%d)", upgrade.Cost)
		}
		btn.Draw(screen, p.fontFace, cursor.In(btn.Rect))
		return
	}
	p.UpgradeButton.Disabled = true

	if enemy, ok := ecs.Enemies[p.TargetEntity]; ok {
		name := enemy.Archetype
		for _, e := range tuning.Enemies {
			if e.ID == enemy.Archetype {
				name = e.Name
			}
		}
		text.Draw(screen, name, p.fontFace, startX, startY, p.textColor)
		text.Draw(screen, fmt.Sprintf("Life: %d / %d", enemy.Life, enemy.MaxLife), p.fontFace, startX, startY+lineHeight, p.textColor)
		text.Draw(screen, fmt.Sprintf("Wave: %d", enemy.Wave+1), p.fontFace, startX+columnSpacing, startY+lineHeight, p.textColor)
		if v, ok := ecs.Velocities[p.TargetEntity]; ok {
			text.Draw(screen, fmt.Sprintf("Speed: %.1f", v.Speed), p.fontFace, startX, startY+2*lineHeight, p.textColor)
		}
		return
	}
	// цель исчезла (враг убит)
	p.Hide()
}

func (p *InfoPanel) drawTowerInfo(screen *ebiten.Image, def defs.TowerDefinition, level int, c defs.CombatTuning, x, y int) {
	stats := def.Stats(level, c)
	text.Draw(screen, fmt.Sprintf("%s  lvl %d", def.Name, level), p.fontFace, x, y, p.textColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage: %d", stats.Damage), p.fontFace, x, y, p.textColor)
	text.Draw(screen, fmt.Sprintf("Cooldown: %.2fs", stats.Cooldown), p.fontFace, x+columnSpacing, y, p.textColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", c.AttackRange), p.fontFace, x, y, p.textColor)
}
